package transaction

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateTransactionNo 生成交易号
// 格式: TXN + 时间戳(精确到秒) + 6位随机数
// 示例: TXN20260828153045123456
// 说明:单机场景下时间戳+随机数冲突概率极低,数据库唯一索引兜底
func GenerateTransactionNo() string {
	timestamp := time.Now().Format("20060102150405")
	random := rand.Intn(1000000)
	return fmt.Sprintf("TXN%s%06d", timestamp, random)
}
