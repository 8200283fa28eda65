package handler

import (
	"bizdesk/internal/domain/entity"
	"bizdesk/internal/domain/repository"
	"bizdesk/internal/usecase"
)

// Resource handler constructors, one per collection, provided to Fx.

func NewCompanyHandler(repo repository.Repository[*entity.Company], deps ResourceDeps) *ResourceHandler[*entity.Company] {
	return NewResourceHandler(Resource[*entity.Company]{
		Path:       "/companies",
		Label:      "Company",
		Target:     usecase.TargetCompany,
		NewPayload: func() Payload[*entity.Company] { return &CompanyPayload{} },
	}, repo, deps)
}

func NewCustomerHandler(repo repository.Repository[*entity.Customer], deps ResourceDeps) *ResourceHandler[*entity.Customer] {
	return NewResourceHandler(Resource[*entity.Customer]{
		Path:         "/customers",
		Label:        "Customer",
		Target:       usecase.TargetCustomer,
		NewPayload:   func() Payload[*entity.Customer] { return &CustomerPayload{} },
		ParentField:  "company_id",
		ParentTarget: usecase.TargetCompany,
	}, repo, deps)
}

func NewSupplierHandler(repo repository.Repository[*entity.Supplier], deps ResourceDeps) *ResourceHandler[*entity.Supplier] {
	return NewResourceHandler(Resource[*entity.Supplier]{
		Path:         "/suppliers",
		Label:        "Supplier",
		Target:       usecase.TargetSupplier,
		NewPayload:   func() Payload[*entity.Supplier] { return &SupplierPayload{} },
		ParentField:  "company_id",
		ParentTarget: usecase.TargetCompany,
	}, repo, deps)
}

func NewProductHandler(repo repository.Repository[*entity.Product], deps ResourceDeps) *ResourceHandler[*entity.Product] {
	return NewResourceHandler(Resource[*entity.Product]{
		Path:         "/products",
		Label:        "Product",
		NewPayload:   func() Payload[*entity.Product] { return &ProductPayload{} },
		ParentField:  "company_id",
		ParentTarget: usecase.TargetCompany,
	}, repo, deps)
}

func NewProjectHandler(repo repository.Repository[*entity.Project], deps ResourceDeps) *ResourceHandler[*entity.Project] {
	return NewResourceHandler(Resource[*entity.Project]{
		Path:         "/projects",
		Label:        "Project",
		Target:       usecase.TargetProject,
		NewPayload:   func() Payload[*entity.Project] { return &ProjectPayload{} },
		ParentField:  "company_id",
		ParentTarget: usecase.TargetCompany,
	}, repo, deps)
}

func NewTaskHandler(repo repository.Repository[*entity.Task], deps ResourceDeps) *ResourceHandler[*entity.Task] {
	return NewResourceHandler(Resource[*entity.Task]{
		Path:         "/tasks",
		Label:        "Task",
		NewPayload:   func() Payload[*entity.Task] { return &TaskPayload{} },
		ParentField:  "project_id",
		ParentTarget: usecase.TargetProject,
	}, repo, deps)
}

func NewInvoiceHandler(repo repository.Repository[*entity.Invoice], deps ResourceDeps) *ResourceHandler[*entity.Invoice] {
	return NewResourceHandler(Resource[*entity.Invoice]{
		Path:         "/invoices",
		Label:        "Invoice",
		NewPayload:   func() Payload[*entity.Invoice] { return &InvoicePayload{} },
		ParentField:  "customer_id",
		ParentTarget: usecase.TargetCustomer,
	}, repo, deps)
}

func NewEstimateHandler(repo repository.Repository[*entity.Estimate], deps ResourceDeps) *ResourceHandler[*entity.Estimate] {
	return NewResourceHandler(Resource[*entity.Estimate]{
		Path:         "/estimates",
		Label:        "Estimate",
		NewPayload:   func() Payload[*entity.Estimate] { return &EstimatePayload{} },
		ParentField:  "customer_id",
		ParentTarget: usecase.TargetCustomer,
	}, repo, deps)
}

func NewOrderFormHandler(repo repository.Repository[*entity.OrderForm], deps ResourceDeps) *ResourceHandler[*entity.OrderForm] {
	return NewResourceHandler(Resource[*entity.OrderForm]{
		Path:         "/order-forms",
		Label:        "Order form",
		NewPayload:   func() Payload[*entity.OrderForm] { return &OrderFormPayload{} },
		ParentField:  "supplier_id",
		ParentTarget: usecase.TargetSupplier,
	}, repo, deps)
}

func NewMessageHandler(repo repository.Repository[*entity.Message], deps ResourceDeps) *ResourceHandler[*entity.Message] {
	return NewResourceHandler(Resource[*entity.Message]{
		Path:         "/messages",
		Label:        "Message",
		NewPayload:   func() Payload[*entity.Message] { return &MessagePayload{} },
		ParentField:  "recipient_id",
		ParentTarget: usecase.TargetUser,
	}, repo, deps)
}
