package genre

import (
	"time"
)

// Genre 图书分类实体（聚合根）
// 设计说明:
// 1. Name是业务唯一标识（数据库层保证唯一性）
// 2. 与Book是一对多关系，但不持有Book集合（避免跨聚合引用）
// 3. 分类下仍有图书时不允许删除（由领域服务通过计数查询保证，
//    而非数据库外键约束）
type Genre struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGenre 创建新分类（工厂方法）
func NewGenre(name string) *Genre {
	now := time.Now()
	return &Genre{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Rename 重命名分类（领域行为）
func (g *Genre) Rename(name string) {
	g.Name = name
	g.UpdatedAt = time.Now()
}
