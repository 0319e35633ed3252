package repository

import (
	"context"
	"errors"
	"math"
	"time"

	"swiftprints/internal/domain/entities"
	"swiftprints/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type orderRecord struct {
	ID            string `gorm:"primaryKey;size:36"`
	UploadID      string `gorm:"size:36;not null;index"`
	PrinterID     string `gorm:"size:36;not null;index"`
	FilamentID    string `gorm:"size:36;not null;index"`
	TeamNumber    string `gorm:"size:32;index"`
	CustomerName  string `gorm:"size:255;not null"`
	CustomerEmail string `gorm:"size:255;not null"`
	TotalCost     float64
	Status        string `gorm:"size:16;not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Catalog rows referenced by orders can be deactivated but never
	// deleted out from under them.
	Upload   uploadRecord   `gorm:"foreignKey:UploadID;constraint:OnDelete:RESTRICT"`
	Printer  printerRecord  `gorm:"foreignKey:PrinterID;constraint:OnDelete:RESTRICT"`
	Filament filamentRecord `gorm:"foreignKey:FilamentID;constraint:OnDelete:RESTRICT"`
}

func (orderRecord) TableName() string { return "orders" }

func orderFromEntity(o entities.Order) orderRecord {
	return orderRecord{
		ID:            o.ID,
		UploadID:      o.UploadID,
		PrinterID:     o.PrinterID,
		FilamentID:    o.FilamentID,
		TeamNumber:    o.TeamNumber,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		TotalCost:     o.TotalCost,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func (r orderRecord) toEntity() entities.Order {
	return entities.Order{
		ID:            r.ID,
		UploadID:      r.UploadID,
		PrinterID:     r.PrinterID,
		FilamentID:    r.FilamentID,
		TeamNumber:    r.TeamNumber,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		TotalCost:     r.TotalCost,
		Status:        entities.OrderStatus(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// OrderMySQLRepository persists orders. Status mutations only touch the
// status column; everything else is frozen at creation.

type OrderMySQLRepository struct {
	db *gorm.DB
}

var _ interfaces.IOrderRepository = (*OrderMySQLRepository)(nil)

func NewOrderMySQLRepository(db *gorm.DB) *OrderMySQLRepository {
	return &OrderMySQLRepository{db: db}
}

func (r *OrderMySQLRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	record := orderFromEntity(o)
	if err := r.db.WithContext(ctx).Omit("Upload", "Printer", "Filament").Create(&record).Error; err != nil {
		return entities.Order{}, err
	}
	return record.toEntity(), nil
}

func (r *OrderMySQLRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var record orderRecord
	err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Order{}, nil
	}
	if err != nil {
		return entities.Order{}, err
	}
	return record.toEntity(), nil
}

func (r *OrderMySQLRepository) List(ctx context.Context, filters entities.OrderFilters) ([]entities.Order, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if filters.Status != nil {
		q = q.Where("status = ?", string(*filters.Status))
	}
	if filters.TeamNumber != "" {
		q = q.Where("team_number = ?", filters.TeamNumber)
	}

	var records []orderRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(records))
	for _, rec := range records {
		orders = append(orders, rec.toEntity())
	}
	return orders, nil
}

func (r *OrderMySQLRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	res := r.db.WithContext(ctx).Model(&orderRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return entities.Order{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Order{}, nil
	}
	return r.GetByID(ctx, id)
}

func (r *OrderMySQLRepository) Stats(ctx context.Context) (entities.OrderStats, error) {
	var counts []struct {
		Status string
		N      int
	}
	err := r.db.WithContext(ctx).Model(&orderRecord{}).
		Select("status, count(*) as n").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return entities.OrderStats{}, err
	}

	var stats entities.OrderStats
	for _, c := range counts {
		stats.TotalOrders += c.N
		switch entities.OrderStatus(c.Status) {
		case entities.OrderStatusPlaced:
			stats.PlacedOrders = c.N
		case entities.OrderStatusPrinting:
			stats.PrintingOrders = c.N
		case entities.OrderStatusReady:
			stats.ReadyOrders = c.N
		case entities.OrderStatusCompleted:
			stats.CompletedOrders = c.N
		case entities.OrderStatusCancelled:
			stats.CancelledOrders = c.N
		}
	}

	err = r.db.WithContext(ctx).Model(&orderRecord{}).
		Where("status = ?", string(entities.OrderStatusCompleted)).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		return entities.OrderStats{}, err
	}

	if stats.TotalOrders > 0 {
		rate := float64(stats.CompletedOrders) / float64(stats.TotalOrders)
		stats.CompletionRate = math.Round(rate*10000) / 10000
	}
	return stats, nil
}
