package routing

// Controller enumerates the controllers a route can dispatch to.
type Controller uint8

const (
	ControllerHealth Controller = iota + 1
	ControllerAuth
	ControllerCompany
	ControllerUser
	ControllerCustomer
	ControllerSupplier
	ControllerProduct
	ControllerProject
	ControllerTask
	ControllerInvoice
	ControllerEstimate
	ControllerOrderForm
	ControllerMessage
)

var controllerNames = map[Controller]string{
	ControllerHealth:    "health",
	ControllerAuth:      "auth",
	ControllerCompany:   "company",
	ControllerUser:      "user",
	ControllerCustomer:  "customer",
	ControllerSupplier:  "supplier",
	ControllerProduct:   "product",
	ControllerProject:   "project",
	ControllerTask:      "task",
	ControllerInvoice:   "invoice",
	ControllerEstimate:  "estimate",
	ControllerOrderForm: "order_form",
	ControllerMessage:   "message",
}

func (c Controller) String() string {
	if name, ok := controllerNames[c]; ok {
		return name
	}

	return "unknown"
}

// IsValid reports whether c is one of the declared controllers.
func (c Controller) IsValid() bool {
	_, ok := controllerNames[c]

	return ok
}

// Operation enumerates the operations a controller exposes.
type Operation uint8

const (
	OperationCreate Operation = iota + 1
	OperationList
	OperationGet
	OperationUpdate
	OperationDelete
	OperationListByParent
	OperationLogin
	OperationCheck
	OperationMe
	OperationGetByEmail
	OperationUpdateByEmail
	OperationDeleteByEmail
)

var operationNames = map[Operation]string{
	OperationCreate:        "create",
	OperationList:          "list",
	OperationGet:           "get",
	OperationUpdate:        "update",
	OperationDelete:        "delete",
	OperationListByParent:  "list_by_parent",
	OperationLogin:         "login",
	OperationCheck:         "check",
	OperationMe:            "me",
	OperationGetByEmail:    "get_by_email",
	OperationUpdateByEmail: "update_by_email",
	OperationDeleteByEmail: "delete_by_email",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}

	return "unknown"
}

// IsValid reports whether o is one of the declared operations.
func (o Operation) IsValid() bool {
	_, ok := operationNames[o]

	return ok
}

// HandlerID names the controller operation a route resolves to.
type HandlerID struct {
	Controller Controller
	Operation  Operation
}

// Handle builds a HandlerID.
func Handle(controller Controller, operation Operation) HandlerID {
	return HandlerID{Controller: controller, Operation: operation}
}

func (h HandlerID) String() string {
	return h.Controller.String() + "." + h.Operation.String()
}
