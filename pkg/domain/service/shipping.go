package service

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// ManifestEntry is one shippable line of a checkout: the product name,
// the purchased quantity and the unit weight in kilograms.
type ManifestEntry struct {
	Name         string
	Quantity     int
	UnitWeightKg decimal.Decimal
}

var gramsPerKg = decimal.NewFromInt(1000)

// RenderShipmentNotice prints the shipment notice for a manifest: one
// line per entry with the line weight in grams, then the total package
// weight in kilograms. Pure formatting, no state is touched.
func RenderShipmentNotice(w io.Writer, manifest []ManifestEntry) {
	fmt.Fprintln(w, "** Shipment notice **")
	totalKg := decimal.Zero
	for _, entry := range manifest {
		lineKg := entry.UnitWeightKg.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		totalKg = totalKg.Add(lineKg)
		fmt.Fprintf(w, "%dx %-10s %sg\n", entry.Quantity, entry.Name, lineKg.Mul(gramsPerKg).StringFixed(0))
	}
	fmt.Fprintf(w, "Total package weight %skg\n\n", totalKg.StringFixed(1))
}
