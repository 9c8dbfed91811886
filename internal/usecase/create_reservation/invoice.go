package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ContainerSlots/internal/domain"
)

const trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// buildInvoice формирует сводку счёта по забронированному контейнеру.
// Номер счёта INV-<контейнер>-<uid>, uid уникален для каждого бронирования.
func buildInvoice(container *domain.Container, now time.Time, uid string, rnd RandomSource) domain.Invoice {
	return domain.Invoice{
		ID:               fmt.Sprintf("%s-%s-%s", domain.InvoicePrefix, container.ID, uid),
		Barcode:          barcode(container.ID, now),
		TrackingNumber:   trackingNumber(rnd),
		PurchaseDate:     now,
		DepartureDate:    container.DepartureDate,
		EstimatedArrival: container.DepartureDate.AddDate(0, 0, domain.EstimatedTransitDays),
		Route:            container.Route,
	}
}

// barcode MC + ID контейнера + последние 6 цифр unix-времени в миллисекундах
func barcode(containerID string, now time.Time) string {
	return fmt.Sprintf("%s%s%06d", domain.BarcodePrefix, containerID, now.UnixMilli()%1_000_000)
}

// trackingNumber TRK + 9 символов [A-Z0-9]
func trackingNumber(rnd RandomSource) string {
	var sb strings.Builder
	sb.Grow(len(domain.TrackingPrefix) + domain.TrackingSuffixLength)
	sb.WriteString(domain.TrackingPrefix)

	for i := 0; i < domain.TrackingSuffixLength; i++ {
		sb.WriteByte(trackingAlphabet[rnd.Intn(len(trackingAlphabet))])
	}

	return sb.String()
}
