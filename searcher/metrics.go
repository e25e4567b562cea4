package searcher

import (
	"sync/atomic"
	"time"
)

type MoveMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Depth      int
	Nodes      int64
	Leaves     int64
	MemoProbes int64
	MemoHits   int64
	Cutoffs    int64
	Passes     int64
}

type MetricsCollector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddProbe(hit bool)
	AddCutoff()
	AddPass()
	Complete() MoveMetrics
}

type metricsCollector struct {
	startTime  time.Time
	depth      int
	nodes      atomic.Int64
	leaves     atomic.Int64
	memoProbes atomic.Int64
	memoHits   atomic.Int64
	cutoffs    atomic.Int64
	passes     atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.memoProbes.Store(0)
	m.memoHits.Store(0)
	m.cutoffs.Store(0)
	m.passes.Store(0)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *metricsCollector) AddProbe(hit bool) {
	m.memoProbes.Add(1)
	if hit {
		m.memoHits.Add(1)
	}
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) AddPass() {
	m.passes.Add(1)
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Depth:      m.depth,
		Nodes:      m.nodes.Load(),
		Leaves:     m.leaves.Load(),
		MemoProbes: m.memoProbes.Load(),
		MemoHits:   m.memoHits.Load(),
		Cutoffs:    m.cutoffs.Load(),
		Passes:     m.passes.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(int)             {}
func (m *noMetricsCollector) AddNode()              {}
func (m *noMetricsCollector) AddLeaf()              {}
func (m *noMetricsCollector) AddProbe(bool)         {}
func (m *noMetricsCollector) AddCutoff()            {}
func (m *noMetricsCollector) AddPass()              {}
func (m *noMetricsCollector) Complete() MoveMetrics { return MoveMetrics{} }
