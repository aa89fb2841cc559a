package inventory

import "github.com/shopspring/decimal"

// SalesWindowDays ventana de ventas recientes (días corridos) usada para estimar la demanda.
const SalesWindowDays = 30

// DaysUntilStockout proyecta los días hasta agotar stock con la demanda promedio de la ventana.
// DemandaDiaria = UnidadesVendidas / DiasVentana; Dias = floor(StockActual / DemandaDiaria).
// Se calcula como floor(StockActual * DiasVentana / UnidadesVendidas) para no perder precisión.
// Devuelve nil si no hay demanda positiva (no determinable: ni cero ni infinito).
func DaysUntilStockout(currentStock int64, unitsSold decimal.Decimal, windowDays int) *int64 {
	if windowDays <= 0 || !unitsSold.IsPositive() {
		return nil
	}
	num := decimal.NewFromInt(currentStock).Mul(decimal.NewFromInt(int64(windowDays)))
	q, r := num.QuoRem(unitsSold, 0)
	if r.IsNegative() {
		q = q.Sub(decimal.NewFromInt(1))
	}
	days := q.IntPart()
	return &days
}
