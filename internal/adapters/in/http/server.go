package http

import (
	"context"
	"log/slog"

	"installation/internal/core/application/usecases/commands"
	"installation/internal/core/application/usecases/queries"
	"installation/internal/core/domain/model/kernel"
	"installation/internal/generated/servers"
)

// Use case ports of the HTTP adapter. Command handlers satisfy them through a pointer.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	TransitionOrderHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionOrderCommand) error
	}
	VerifyQRHandler interface {
		Handle(ctx context.Context, cmd commands.VerifyQRCommand) error
	}
	AdminOverrideCloseHandler interface {
		Handle(ctx context.Context, cmd commands.AdminOverrideCloseCommand) error
	}
	ReissueQRHandler interface {
		Handle(ctx context.Context, cmd commands.ReissueQRCommand) error
	}
	RetryCascadeHandler interface {
		Handle(ctx context.Context, cmd commands.RetryCascadeCommand) (bool, error)
	}
	AssignTaskHandler interface {
		Handle(ctx context.Context, cmd commands.AssignTaskCommand) (kernel.UUID, error)
	}
	UpdateTaskStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateTaskStatusCommand) error
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	GetOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.OrderView, error)
	}
	GetOrderHistoryHandler interface {
		Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.HistoryEntryView, error)
	}
	GetOrderActionsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderActionsQuery) (queries.OrderActionsView, error)
	}
	GetOrderQRHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQRQuery) ([]byte, error)
	}
	GetTasksHandler interface {
		Handle(ctx context.Context, query queries.GetTasksQuery) ([]queries.TaskView, error)
	}
)

// Commands groups the write-side handlers served over HTTP.
type Commands struct {
	CreateOrder        CreateOrderHandler
	TransitionOrder    TransitionOrderHandler
	VerifyQR           VerifyQRHandler
	AdminOverrideClose AdminOverrideCloseHandler
	ReissueQR          ReissueQRHandler
	RetryCascade       RetryCascadeHandler
	AssignTask         AssignTaskHandler
	UpdateTaskStatus   UpdateTaskStatusHandler
}

// Queries groups the read-side handlers served over HTTP.
type Queries struct {
	GetOrder        GetOrderHandler
	GetOrders       GetOrdersHandler
	GetOrderHistory GetOrderHistoryHandler
	GetOrderActions GetOrderActionsHandler
	GetOrderQR      GetOrderQRHandler
	GetTasks        GetTasksHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commands Commands, queries Queries, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		commands: commands,
		queries:  queries,
		logger:   logger.With("component", "http"),
	}
}

// actorFrom turns the identity headers into the actor a request is made under.
// System is not a wire role, so it never gets through here.
func actorFrom(userID servers.XUserId, role servers.XUserRole) (kernel.Actor, error) {
	id, err := kernel.UUIDFromGoogle(userID)
	if err != nil {
		return kernel.Actor{}, err
	}
	r, err := kernel.ParseRole(string(role))
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(id, r)
}

func orderIDFrom(id servers.OrderId) (kernel.UUID, error) {
	return kernel.UUIDFromGoogle(id)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
