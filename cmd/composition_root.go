package cmd

import (
	"log/slog"
	"time"

	httpin "installation/internal/adapters/in/http"
	"installation/internal/adapters/out/metrics"
	"installation/internal/adapters/out/postgres"
	"installation/internal/adapters/out/postgres/orderrepo"
	"installation/internal/adapters/out/qrcode"
	"installation/internal/core/application/usecases/commands"
	"installation/internal/core/application/usecases/queries"
	"installation/internal/core/domain/services"
	"installation/internal/core/ports"
	"installation/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	orderWorkflow *services.OrderWorkflow
	taskWorkflow  *services.TaskWorkflow
	metrics       ports.WorkflowMetrics
}

// NewCompositionRoot wires the application. publisher may be nil when no broker is
// configured; registerer receives the workflow collectors.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	registerer prometheus.Registerer,
	logger *slog.Logger,
) (CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	orderWorkflow, err := services.NewOrderWorkflow(services.UUIDTokenGenerator{}, time.Now)
	if err != nil {
		return CompositionRoot{}, err
	}
	taskWorkflow, err := services.NewTaskWorkflow(time.Now)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:        config,
		gormDB:        gormDB,
		uowFactory:    postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		logger:        logger,
		orderWorkflow: orderWorkflow,
		taskWorkflow:  taskWorkflow,
		metrics:       metrics.NewWorkflowMetrics(registerer),
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.orderWorkflow, c.metrics)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), c.orderWorkflow, c.metrics)
}

func (c *CompositionRoot) CreateVerifyQRCommandHandler() commands.VerifyQRCommandHandler {
	return commands.NewVerifyQRCommandHandler(c.orderUoWFactory(), c.orderWorkflow.Closure(), c.metrics)
}

func (c *CompositionRoot) CreateAdminOverrideCloseCommandHandler() commands.AdminOverrideCloseCommandHandler {
	return commands.NewAdminOverrideCloseCommandHandler(c.orderUoWFactory(), c.orderWorkflow.Closure(), c.metrics)
}

func (c *CompositionRoot) CreateReissueQRCommandHandler() commands.ReissueQRCommandHandler {
	return commands.NewReissueQRCommandHandler(c.orderUoWFactory(), c.orderWorkflow.Closure(), c.metrics)
}

func (c *CompositionRoot) CreateAssignTaskCommandHandler() commands.AssignTaskCommandHandler {
	return commands.NewAssignTaskCommandHandler(c.uoWFactory(), c.taskWorkflow, c.metrics)
}

func (c *CompositionRoot) CreateUpdateTaskStatusCommandHandler() commands.UpdateTaskStatusCommandHandler {
	return commands.NewUpdateTaskStatusCommandHandler(
		c.uoWFactory(),
		c.orderUoWFactory(),
		c.taskWorkflow,
		c.orderWorkflow,
		c.metrics,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRetryCascadeCommandHandler() commands.RetryCascadeCommandHandler {
	return commands.NewRetryCascadeCommandHandler(c.uoWFactory(), c.orderWorkflow, c.metrics)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderActionsQueryHandler() queries.GetOrderActionsQueryHandler {
	return queries.NewGetOrderActionsQueryHandler(orderrepo.NewGormOrderReader(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrderQRQueryHandler() queries.GetOrderQRQueryHandler {
	return queries.NewGetOrderQRQueryHandler(orderrepo.NewGormOrderReader(c.gormDB), qrcode.NewRenderer())
}

func (c *CompositionRoot) CreateGetTasksQueryHandler() queries.GetTasksQueryHandler {
	return queries.NewGetTasksQueryHandler(c.gormDB)
}

// CreateServer builds the HTTP adapter over every use case.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	transitionOrder := c.CreateTransitionOrderCommandHandler()
	verifyQR := c.CreateVerifyQRCommandHandler()
	overrideClose := c.CreateAdminOverrideCloseCommandHandler()
	reissueQR := c.CreateReissueQRCommandHandler()
	retryCascade := c.CreateRetryCascadeCommandHandler()
	assignTask := c.CreateAssignTaskCommandHandler()
	updateTaskStatus := c.CreateUpdateTaskStatusCommandHandler()

	return httpin.NewServer(
		httpin.Commands{
			CreateOrder:        &createOrder,
			TransitionOrder:    &transitionOrder,
			VerifyQR:           &verifyQR,
			AdminOverrideClose: &overrideClose,
			ReissueQR:          &reissueQR,
			RetryCascade:       &retryCascade,
			AssignTask:         &assignTask,
			UpdateTaskStatus:   &updateTaskStatus,
		},
		httpin.Queries{
			GetOrder:        c.CreateGetOrderQueryHandler(),
			GetOrders:       c.CreateGetOrdersQueryHandler(),
			GetOrderHistory: c.CreateGetOrderHistoryQueryHandler(),
			GetOrderActions: c.CreateGetOrderActionsQueryHandler(),
			GetOrderQR:      c.CreateGetOrderQRQueryHandler(),
			GetTasks:        c.CreateGetTasksQueryHandler(),
		},
		c.logger,
	)
}

// CreateJobManager schedules the cascade reconciliation over the order store.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	retrier := c.CreateRetryCascadeCommandHandler()
	return jobs.NewJobManager(
		orderrepo.NewGormOrderReader(c.gormDB),
		&retrier,
		c.config.CascadeRetrySchedule,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
