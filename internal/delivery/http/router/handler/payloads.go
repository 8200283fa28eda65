package handler

import (
	"strings"
	"time"

	"bizdesk/internal/domain/entity"
	"bizdesk/internal/usecase"
)

// CompanyPayload is the request body of company create and update.
type CompanyPayload struct {
	Name               string `json:"name" validate:"required,notblank,max=255"`
	RegistrationNumber string `json:"registration_number" validate:"max=50"`
	Email              string `json:"email" validate:"omitempty,email,max=255"`
	Phone              string `json:"phone" validate:"max=50"`
	Address            string `json:"address" validate:"max=255"`
	ZipCode            string `json:"zip_code" validate:"max=20"`
	City               string `json:"city" validate:"max=100"`
	Country            string `json:"country" validate:"max=100"`
}

func (p *CompanyPayload) From(e *entity.Company) {
	p.Name = e.Name
	p.RegistrationNumber = e.RegistrationNumber
	p.Email = e.Email
	p.Phone = e.Phone
	p.Address = e.Address
	p.ZipCode = e.ZipCode
	p.City = e.City
	p.Country = e.Country
}

func (p *CompanyPayload) Apply(e *entity.Company) {
	e.Name = strings.TrimSpace(p.Name)
	e.RegistrationNumber = p.RegistrationNumber
	e.Email = p.Email
	e.Phone = p.Phone
	e.Address = p.Address
	e.ZipCode = p.ZipCode
	e.City = p.City
	e.Country = p.Country
}

func (p *CompanyPayload) References() []usecase.Reference {
	return nil
}

// PartyPayload is the request body shared by customers and suppliers.
type PartyPayload struct {
	CompanyID int64  `json:"company_id" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required,notblank,max=255"`
	Email     string `json:"email" validate:"omitempty,email,max=255"`
	Phone     string `json:"phone" validate:"max=50"`
	Address   string `json:"address" validate:"max=255"`
	ZipCode   string `json:"zip_code" validate:"max=20"`
	City      string `json:"city" validate:"max=100"`
	Country   string `json:"country" validate:"max=100"`
}

func (p *PartyPayload) References() []usecase.Reference {
	return []usecase.Reference{usecase.Ref("company_id", usecase.TargetCompany, p.CompanyID)}
}

// CustomerPayload is the request body of customer create and update.
type CustomerPayload struct {
	PartyPayload
}

func (p *CustomerPayload) From(e *entity.Customer) {
	p.CompanyID = e.CompanyID
	p.Name = e.Name
	p.Email = e.Email
	p.Phone = e.Phone
	p.Address = e.Address
	p.ZipCode = e.ZipCode
	p.City = e.City
	p.Country = e.Country
}

func (p *CustomerPayload) Apply(e *entity.Customer) {
	e.CompanyID = p.CompanyID
	e.Name = strings.TrimSpace(p.Name)
	e.Email = p.Email
	e.Phone = p.Phone
	e.Address = p.Address
	e.ZipCode = p.ZipCode
	e.City = p.City
	e.Country = p.Country
}

// SupplierPayload is the request body of supplier create and update.
type SupplierPayload struct {
	PartyPayload
}

func (p *SupplierPayload) From(e *entity.Supplier) {
	p.CompanyID = e.CompanyID
	p.Name = e.Name
	p.Email = e.Email
	p.Phone = e.Phone
	p.Address = e.Address
	p.ZipCode = e.ZipCode
	p.City = e.City
	p.Country = e.Country
}

func (p *SupplierPayload) Apply(e *entity.Supplier) {
	e.CompanyID = p.CompanyID
	e.Name = strings.TrimSpace(p.Name)
	e.Email = p.Email
	e.Phone = p.Phone
	e.Address = p.Address
	e.ZipCode = p.ZipCode
	e.City = p.City
	e.Country = p.Country
}

// ProductPayload is the request body of product create and update.
type ProductPayload struct {
	CompanyID   int64   `json:"company_id" validate:"required,gt=0"`
	SupplierID  *int64  `json:"supplier_id" validate:"omitempty,gt=0"`
	Reference   string  `json:"reference" validate:"required,notblank,max=50"`
	Name        string  `json:"name" validate:"required,notblank,max=255"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

func (p *ProductPayload) From(e *entity.Product) {
	p.CompanyID = e.CompanyID
	p.SupplierID = e.SupplierID
	p.Reference = e.Reference
	p.Name = e.Name
	p.Description = e.Description
	p.UnitPrice = e.UnitPrice
	p.Stock = e.Stock
}

func (p *ProductPayload) Apply(e *entity.Product) {
	e.CompanyID = p.CompanyID
	e.SupplierID = p.SupplierID
	e.Reference = p.Reference
	e.Name = strings.TrimSpace(p.Name)
	e.Description = p.Description
	e.UnitPrice = p.UnitPrice
	e.Stock = p.Stock
}

func (p *ProductPayload) References() []usecase.Reference {
	return []usecase.Reference{
		usecase.Ref("company_id", usecase.TargetCompany, p.CompanyID),
		usecase.OptionalRef("supplier_id", usecase.TargetSupplier, p.SupplierID),
	}
}

// ProjectPayload is the request body of project create and update.
type ProjectPayload struct {
	CompanyID   int64         `json:"company_id" validate:"required,gt=0"`
	CustomerID  *int64        `json:"customer_id" validate:"omitempty,gt=0"`
	Name        string        `json:"name" validate:"required,notblank,max=255"`
	Description string        `json:"description"`
	Status      entity.Status `json:"status" validate:"required,oneof=draft open in_progress done cancelled"`
	StartDate   *time.Time    `json:"start_date"`
	EndDate     *time.Time    `json:"end_date"`
}

func (p *ProjectPayload) From(e *entity.Project) {
	p.CompanyID = e.CompanyID
	p.CustomerID = e.CustomerID
	p.Name = e.Name
	p.Description = e.Description
	p.Status = e.Status
	p.StartDate = e.StartDate
	p.EndDate = e.EndDate
}

func (p *ProjectPayload) Apply(e *entity.Project) {
	e.CompanyID = p.CompanyID
	e.CustomerID = p.CustomerID
	e.Name = strings.TrimSpace(p.Name)
	e.Description = p.Description
	e.Status = p.Status
	e.StartDate = p.StartDate
	e.EndDate = p.EndDate
}

func (p *ProjectPayload) References() []usecase.Reference {
	return []usecase.Reference{
		usecase.Ref("company_id", usecase.TargetCompany, p.CompanyID),
		usecase.OptionalRef("customer_id", usecase.TargetCustomer, p.CustomerID),
	}
}

// TaskPayload is the request body of task create and update.
type TaskPayload struct {
	ProjectID   int64         `json:"project_id" validate:"required,gt=0"`
	AssigneeID  *int64        `json:"assignee_id" validate:"omitempty,gt=0"`
	Title       string        `json:"title" validate:"required,notblank,max=255"`
	Description string        `json:"description"`
	Status      entity.Status `json:"status" validate:"required,oneof=open in_progress done cancelled"`
	DueDate     *time.Time    `json:"due_date"`
}

func (p *TaskPayload) From(e *entity.Task) {
	p.ProjectID = e.ProjectID
	p.AssigneeID = e.AssigneeID
	p.Title = e.Title
	p.Description = e.Description
	p.Status = e.Status
	p.DueDate = e.DueDate
}

func (p *TaskPayload) Apply(e *entity.Task) {
	e.ProjectID = p.ProjectID
	e.AssigneeID = p.AssigneeID
	e.Title = strings.TrimSpace(p.Title)
	e.Description = p.Description
	e.Status = p.Status
	e.DueDate = p.DueDate
}

func (p *TaskPayload) References() []usecase.Reference {
	return []usecase.Reference{
		usecase.Ref("project_id", usecase.TargetProject, p.ProjectID),
		usecase.OptionalRef("assignee_id", usecase.TargetUser, p.AssigneeID),
	}
}

// InvoicePayload is the request body of invoice create and update.
type InvoicePayload struct {
	CompanyID  int64         `json:"company_id" validate:"required,gt=0"`
	CustomerID int64         `json:"customer_id" validate:"required,gt=0"`
	ProjectID  *int64        `json:"project_id" validate:"omitempty,gt=0"`
	Reference  string        `json:"reference" validate:"required,notblank,max=50"`
	Status     entity.Status `json:"status" validate:"required,oneof=draft sent paid cancelled"`
	IssuedOn   time.Time     `json:"issued_on" validate:"required"`
	DueOn      *time.Time    `json:"due_on"`
	Amount     float64       `json:"amount" validate:"gte=0"`
	Notes      string        `json:"notes"`
}

func (p *InvoicePayload) From(e *entity.Invoice) {
	p.CompanyID = e.CompanyID
	p.CustomerID = e.CustomerID
	p.ProjectID = e.ProjectID
	p.Reference = e.Reference
	p.Status = e.Status
	p.IssuedOn = e.IssuedOn
	p.DueOn = e.DueOn
	p.Amount = e.Amount
	p.Notes = e.Notes
}

func (p *InvoicePayload) Apply(e *entity.Invoice) {
	e.CompanyID = p.CompanyID
	e.CustomerID = p.CustomerID
	e.ProjectID = p.ProjectID
	e.Reference = p.Reference
	e.Status = p.Status
	e.IssuedOn = p.IssuedOn
	e.DueOn = p.DueOn
	e.Amount = p.Amount
	e.Notes = p.Notes
}

func (p *InvoicePayload) References() []usecase.Reference {
	return []usecase.Reference{
		usecase.Ref("company_id", usecase.TargetCompany, p.CompanyID),
		usecase.Ref("customer_id", usecase.TargetCustomer, p.CustomerID),
		usecase.OptionalRef("project_id", usecase.TargetProject, p.ProjectID),
	}
}

// EstimatePayload is the request body of estimate create and update.
type EstimatePayload struct {
	CompanyID  int64         `json:"company_id" validate:"required,gt=0"`
	CustomerID int64         `json:"customer_id" validate:"required,gt=0"`
	ProjectID  *int64        `json:"project_id" validate:"omitempty,gt=0"`
	Reference  string        `json:"reference" validate:"required,notblank,max=50"`
	Status     entity.Status `json:"status" validate:"required,oneof=draft sent accepted rejected"`
	IssuedOn   time.Time     `json:"issued_on" validate:"required"`
	ValidUntil *time.Time    `json:"valid_until"`
	Amount     float64       `json:"amount" validate:"gte=0"`
	Notes      string        `json:"notes"`
}

func (p *EstimatePayload) From(e *entity.Estimate) {
	p.CompanyID = e.CompanyID
	p.CustomerID = e.CustomerID
	p.ProjectID = e.ProjectID
	p.Reference = e.Reference
	p.Status = e.Status
	p.IssuedOn = e.IssuedOn
	p.ValidUntil = e.ValidUntil
	p.Amount = e.Amount
	p.Notes = e.Notes
}

func (p *EstimatePayload) Apply(e *entity.Estimate) {
	e.CompanyID = p.CompanyID
	e.CustomerID = p.CustomerID
	e.ProjectID = p.ProjectID
	e.Reference = p.Reference
	e.Status = p.Status
	e.IssuedOn = p.IssuedOn
	e.ValidUntil = p.ValidUntil
	e.Amount = p.Amount
	e.Notes = p.Notes
}

func (p *EstimatePayload) References() []usecase.Reference {
	return []usecase.Reference{
		usecase.Ref("company_id", usecase.TargetCompany, p.CompanyID),
		usecase.Ref("customer_id", usecase.TargetCustomer, p.CustomerID),
		usecase.OptionalRef("project_id", usecase.TargetProject, p.ProjectID),
	}
}

// OrderFormPayload is the request body of order form create and update.
type OrderFormPayload struct {
	CompanyID    int64         `json:"company_id" validate:"required,gt=0"`
	SupplierID   int64         `json:"supplier_id" validate:"required,gt=0"`
	Reference    string        `json:"reference" validate:"required,notblank,max=50"`
	Status       entity.Status `json:"status" validate:"required,oneof=draft sent accepted cancelled"`
	OrderedOn    time.Time     `json:"ordered_on" validate:"required"`
	DeliveryDate *time.Time    `json:"delivery_date"`
	Amount       float64       `json:"amount" validate:"gte=0"`
	Notes        string        `json:"notes"`
}

func (p *OrderFormPayload) From(e *entity.OrderForm) {
	p.CompanyID = e.CompanyID
	p.SupplierID = e.SupplierID
	p.Reference = e.Reference
	p.Status = e.Status
	p.OrderedOn = e.OrderedOn
	p.DeliveryDate = e.DeliveryDate
	p.Amount = e.Amount
	p.Notes = e.Notes
}

func (p *OrderFormPayload) Apply(e *entity.OrderForm) {
	e.CompanyID = p.CompanyID
	e.SupplierID = p.SupplierID
	e.Reference = p.Reference
	e.Status = p.Status
	e.OrderedOn = p.OrderedOn
	e.DeliveryDate = p.DeliveryDate
	e.Amount = p.Amount
	e.Notes = p.Notes
}

func (p *OrderFormPayload) References() []usecase.Reference {
	return []usecase.Reference{
		usecase.Ref("company_id", usecase.TargetCompany, p.CompanyID),
		usecase.Ref("supplier_id", usecase.TargetSupplier, p.SupplierID),
	}
}

// MessagePayload is the request body of message create and update.
type MessagePayload struct {
	SenderID    int64      `json:"sender_id" validate:"required,gt=0"`
	RecipientID int64      `json:"recipient_id" validate:"required,gt=0"`
	Subject     string     `json:"subject" validate:"required,notblank,max=255"`
	Body        string     `json:"body" validate:"required,notblank"`
	ReadAt      *time.Time `json:"read_at"`
}

func (p *MessagePayload) From(e *entity.Message) {
	p.SenderID = e.SenderID
	p.RecipientID = e.RecipientID
	p.Subject = e.Subject
	p.Body = e.Body
	p.ReadAt = e.ReadAt
}

func (p *MessagePayload) Apply(e *entity.Message) {
	e.SenderID = p.SenderID
	e.RecipientID = p.RecipientID
	e.Subject = strings.TrimSpace(p.Subject)
	e.Body = p.Body
	e.ReadAt = p.ReadAt
}

func (p *MessagePayload) References() []usecase.Reference {
	return []usecase.Reference{
		usecase.Ref("sender_id", usecase.TargetUser, p.SenderID),
		usecase.Ref("recipient_id", usecase.TargetUser, p.RecipientID),
	}
}
