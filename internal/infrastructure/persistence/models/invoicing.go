package models

import (
	"github.com/google/uuid"
	"github.com/mhassanrahi/invoice-asaan/internal/domain/invoicing"
)

// CustomerModel is the persistence model for customers
type CustomerModel struct {
	BaseModel
	Name           string  `gorm:"size:255;not null"`
	Email          string  `gorm:"size:255;not null;index"`
	OrganizationID *string `gorm:"size:64;index"`
}

// TableName returns the table name for CustomerModel
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts CustomerModel to a domain Customer
func (m *CustomerModel) ToDomain() *invoicing.Customer {
	return &invoicing.Customer{
		BaseEntity:     m.BaseModel.ToDomain(),
		Name:           m.Name,
		Email:          m.Email,
		OrganizationID: m.OrganizationID,
	}
}

// CustomerModelFromDomain creates a CustomerModel from a domain Customer
func CustomerModelFromDomain(c *invoicing.Customer) *CustomerModel {
	m := &CustomerModel{
		Name:           c.Name,
		Email:          c.Email,
		OrganizationID: c.OrganizationID,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// InvoiceModel is the persistence model for invoices. Value is stored in
// minor currency units.
type InvoiceModel struct {
	BaseModel
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Value          int64     `gorm:"not null"`
	Description    string    `gorm:"type:text"`
	Status         string    `gorm:"size:32;not null;index"`
	CreatedBy      string    `gorm:"size:64;not null;index"`
	OrganizationID *string   `gorm:"size:64;index"`
}

// TableName returns the table name for InvoiceModel
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts InvoiceModel to a domain Invoice
func (m *InvoiceModel) ToDomain() *invoicing.Invoice {
	return &invoicing.Invoice{
		BaseEntity:     m.BaseModel.ToDomain(),
		CustomerID:     m.CustomerID,
		Value:          m.Value,
		Description:    m.Description,
		Status:         invoicing.Status(m.Status),
		CreatedBy:      m.CreatedBy,
		OrganizationID: m.OrganizationID,
	}
}

// InvoiceModelFromDomain creates an InvoiceModel from a domain Invoice
func InvoiceModelFromDomain(inv *invoicing.Invoice) *InvoiceModel {
	m := &InvoiceModel{
		CustomerID:     inv.CustomerID,
		Value:          inv.Value,
		Description:    inv.Description,
		Status:         string(inv.Status),
		CreatedBy:      inv.CreatedBy,
		OrganizationID: inv.OrganizationID,
	}
	m.FromDomainBaseEntity(inv.BaseEntity)
	return m
}
