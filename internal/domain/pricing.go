package domain

// PriceTier цена ячеек сектора: все ячейки с id <= UpToCell (и больше предыдущего порога)
type PriceTier struct {
	UpToCell int
	Price    float64
}

// PriceForCell возвращает цену ячейки по секторам.
// Тарифы должны быть отсортированы по UpToCell; ячейки за последним порогом
// получают цену последнего сектора.
func PriceForCell(tiers []PriceTier, cellID int) float64 {
	if len(tiers) == 0 {
		return 0
	}

	for _, tier := range tiers {
		if cellID <= tier.UpToCell {
			return tier.Price
		}
	}
	return tiers[len(tiers)-1].Price
}

// TotalPrice суммирует стоимость набора ячеек
func TotalPrice(tiers []PriceTier, cells []int) float64 {
	total := 0.0
	for _, id := range cells {
		total += PriceForCell(tiers, id)
	}
	return total
}
