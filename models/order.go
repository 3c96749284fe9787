package models

import (
	"time"
)

type Order struct {
	OrderID     uint      `gorm:"primaryKey" json:"order_id"`
	CustomerID  *string   `gorm:"type:varchar(10);index" json:"customer_id"`
	Customer    *Customer `gorm:"foreignKey:CustomerID;references:CustomerID" json:"customer,omitempty"`
	OrderDate   time.Time `gorm:"not null" json:"order_date"`
	TotalAmount float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
}
