package repository

import (
	"errors"
	"time"

	orderdomain "cardshop-backend/internal/order/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderRepository implements OrderRepository using GORM
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new instance of orderRepository
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{
		db: db,
	}
}

func (r *orderRepository) Create(order *orderdomain.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.IsActive = true
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	return r.db.Create(order).Error
}

func (r *orderRepository) FindByUser(userID string) ([]*orderdomain.Order, error) {
	var orders []*orderdomain.Order
	err := r.db.Preload("Cards").Where("user_id = ?", userID).
		Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) FindByIDAndUser(orderID, userID string) (*orderdomain.Order, error) {
	var order orderdomain.Order
	err := r.db.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Deactivate(order *orderdomain.Order) error {
	order.IsActive = false
	order.UpdatedAt = time.Now()
	return r.db.Model(order).Updates(map[string]interface{}{
		"is_active":  false,
		"updated_at": order.UpdatedAt,
	}).Error
}
