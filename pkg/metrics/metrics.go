// Package metrics 基于Prometheus的指标收集
//
// 指标清单：
// - http_requests_total: HTTP请求计数（method/path/status）
// - http_request_duration_seconds: HTTP请求耗时分布（method/path）
// - transactions_created_total: 成功创建的交易数
// - transaction_amount_cents: 交易金额分布（分）
//
// 指标通过/metrics端点暴露，由Prometheus Server定期抓取。
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 指标注册表与各指标句柄
// 使用独立Registry而非全局DefaultRegisterer，
// 避免测试中重复注册冲突。
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	TransactionsCreated prometheus.Counter
	TransactionAmount   prometheus.Histogram
}

// New 创建并注册所有指标
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		TransactionsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "成功创建的交易总数",
			},
		),
		TransactionAmount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_amount_cents",
				Help:    "交易金额分布（分）",
				Buckets: prometheus.ExponentialBuckets(100, 10, 6), // 1元 ~ 10万元
			},
		),
	}

	registry.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.TransactionsCreated,
		m.TransactionAmount,
	)

	return m
}

// Handler 返回/metrics端点的HTTP处理器
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
