package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	vouchersPosted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "khata_vouchers_posted_total",
		Help: "Vouchers committed to the ledger.",
	})
	vouchersRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "khata_vouchers_rejected_total",
		Help: "Voucher submissions rejected by validation or storage.",
	})
)
