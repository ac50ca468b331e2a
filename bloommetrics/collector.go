// Package bloommetrics exports bloom filter statistics to Prometheus.
package bloommetrics

import (
	"sync"

	"github.com/jcalabro/tribloom"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tribloom"

// Collector reports a filter's size, probe count, item count, fill ratio and
// estimated false positive rate on every scrape.
type Collector struct {
	filter *tribloom.Filter
	lock   sync.Locker

	bits         *prometheus.Desc
	probes       *prometheus.Desc
	itemsAdded   *prometheus.Desc
	fillRatio    *prometheus.Desc
	estimatedFPR *prometheus.Desc
}

// NewCollector returns a Collector for f, labeled filter=name.
//
// Filters are not safe for concurrent use. If f is written while scrapes may
// run, pass the lock guarding its writes; Collect holds it while reading.
// lock may be nil when f is no longer written.
func NewCollector(f *tribloom.Filter, name string, lock sync.Locker) *Collector {
	labels := prometheus.Labels{"filter": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "filter", metric), help, nil, labels)
	}

	return &Collector{
		filter:       f,
		lock:         lock,
		bits:         desc("bits", "Size of the filter's bit array"),
		probes:       desc("probes", "Number of bit probes per key"),
		itemsAdded:   desc("items_added_total", "Number of Add calls"),
		fillRatio:    desc("fill_ratio", "Fraction of bits set"),
		estimatedFPR: desc("estimated_false_positive_rate", "Estimated false positive rate given items added"),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.bits
	ch <- c.probes
	ch <- c.itemsAdded
	ch <- c.fillRatio
	ch <- c.estimatedFPR
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.lock != nil {
		c.lock.Lock()
		defer c.lock.Unlock()
	}

	f := c.filter
	ch <- prometheus.MustNewConstMetric(c.bits, prometheus.GaugeValue, float64(f.M()))
	ch <- prometheus.MustNewConstMetric(c.probes, prometheus.GaugeValue, float64(f.K()))
	ch <- prometheus.MustNewConstMetric(c.itemsAdded, prometheus.CounterValue, float64(f.Count()))
	ch <- prometheus.MustNewConstMetric(c.fillRatio, prometheus.GaugeValue, f.EstimatedFillRatio())
	ch <- prometheus.MustNewConstMetric(c.estimatedFPR, prometheus.GaugeValue, f.EstimatedFalsePositiveRate())
}

// Register registers a Collector for f with r.
func Register(r prometheus.Registerer, f *tribloom.Filter, name string, lock sync.Locker) error {
	return r.Register(NewCollector(f, name, lock))
}
