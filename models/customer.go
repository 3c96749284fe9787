package models

type Customer struct {
	CustomerID  string  `gorm:"primaryKey;type:varchar(10)" json:"customer_id"`
	CompanyName string  `gorm:"type:varchar(100);not null" json:"company_name"`
	ContactName string  `gorm:"type:varchar(100)" json:"contact_name"`
	Address     string  `gorm:"type:varchar(255)" json:"address"`
	City        string  `gorm:"type:varchar(60)" json:"city"`
	Country     string  `gorm:"type:varchar(60)" json:"country"`
	Phone       string  `gorm:"type:varchar(30)" json:"phone"`
	Orders      []Order `gorm:"foreignKey:CustomerID;references:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"orders"`
}
