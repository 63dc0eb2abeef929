//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	eventsGateway "delivery-marketplace/internal/gateway/kafka/events"
	pushGateway "delivery-marketplace/internal/gateway/redis/push"
	"delivery-marketplace/internal/handlers/rest/deliveries_available_get"
	"delivery-marketplace/internal/handlers/rest/deliveries_my_get"
	"delivery-marketplace/internal/handlers/rest/delivery_accept_post"
	"delivery-marketplace/internal/handlers/rest/delivery_cancel_post"
	"delivery-marketplace/internal/handlers/rest/delivery_get"
	"delivery-marketplace/internal/handlers/rest/delivery_post"
	"delivery-marketplace/internal/handlers/rest/delivery_status_put"
	"delivery-marketplace/internal/handlers/rest/notification_delete"
	"delivery-marketplace/internal/handlers/rest/notification_read_put"
	"delivery-marketplace/internal/handlers/rest/notifications_get"
	"delivery-marketplace/internal/handlers/rest/notifications_read_all_put"
	"delivery-marketplace/internal/handlers/tasks/deadline_reminder"
	"delivery-marketplace/internal/handlers/tasks/expiry_sweep"
	"delivery-marketplace/internal/pkg/clock"
	"delivery-marketplace/internal/pkg/config"

	deliveryRepo "delivery-marketplace/internal/repository/delivery"
	notificationRepo "delivery-marketplace/internal/repository/notification"
	usersRepo "delivery-marketplace/internal/repository/users"
	deliveryService "delivery-marketplace/internal/service/delivery"
	notificationService "delivery-marketplace/internal/service/notification"

	"delivery-marketplace/pkg/background"
	"delivery-marketplace/pkg/logger"
	"delivery-marketplace/pkg/querier"
	"delivery-marketplace/pkg/tx"
)

type (
	ExpirySweepInterval      time.Duration
	DeadlineReminderInterval time.Duration
)

type Application struct {
	ServiceDelivery     ServiceDelivery
	ServiceNotification ServiceNotification
	BackgroundWorkers   *background.Worker
}

type ServiceDelivery interface {
	delivery_post.Service
	deliveries_available_get.Service
	delivery_get.Service
	deliveries_my_get.Service
	delivery_accept_post.Service
	delivery_status_put.Service
	delivery_cancel_post.Service
}

type ServiceNotification interface {
	notifications_get.Service
	notification_read_put.Service
	notifications_read_all_put.Service
	notification_delete.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		clock.New,
		provideExpirySweepInterval,
		provideDeadlineReminderInterval,

		provideDeliveryRepository,
		provideNotificationRepository,
		provideUsersRepository,

		providePushGateway,
		provideEventGateway,

		provideServiceNotification,
		provideServiceDelivery,

		provideExpirySweepTask,
		provideDeadlineReminderTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Service)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.UserStats), new(*usersRepo.Repository)),
		wire.Bind(new(deliveryService.Notifier), new(*notificationService.Service)),
		wire.Bind(new(deliveryService.Clock), new(*clock.System)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.UserDirectory), new(*usersRepo.Repository)),
		wire.Bind(new(notificationService.PushGateway), new(*pushGateway.PushGateway)),
		wire.Bind(new(notificationService.EventPublisher), new(*eventsGateway.EventGateway)),

		wire.Bind(new(expiry_sweep.Service), new(*deliveryService.Delivery)),
		wire.Bind(new(deadline_reminder.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideUsersRepository(querier *querier.Querier) *usersRepo.Repository {
	return usersRepo.New(querier)
}

func providePushGateway(redisClient *redis.Client) *pushGateway.PushGateway {
	return pushGateway.New(redisClient)
}

func provideEventGateway(producer sarama.SyncProducer, cfg *config.Config) *eventsGateway.EventGateway {
	return eventsGateway.New(producer, cfg.Kafka.Topic)
}

func provideServiceNotification(
	log logger.Logger,
	repository notificationService.Repository,
	users notificationService.UserDirectory,
	push notificationService.PushGateway,
	events notificationService.EventPublisher,
) *notificationService.Service {
	return notificationService.New(log, repository, users, push, events)
}

func provideServiceDelivery(
	log logger.Logger,
	repository deliveryService.Repository,
	userStats deliveryService.UserStats,
	notifier deliveryService.Notifier,
	clk deliveryService.Clock,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		log,
		repository,
		userStats,
		notifier,
		clk,
		txManager,
	)
}

func provideExpirySweepInterval(cfg *config.Config) ExpirySweepInterval {
	return ExpirySweepInterval(cfg.Tasks.ExpirySweepInterval)
}

func provideDeadlineReminderInterval(cfg *config.Config) DeadlineReminderInterval {
	return DeadlineReminderInterval(cfg.Tasks.DeadlineReminderInterval)
}

func provideExpirySweepTask(
	log logger.Logger,
	deliveryService expiry_sweep.Service,
	interval ExpirySweepInterval,
) *expiry_sweep.ExpirySweep {
	return expiry_sweep.NewExpirySweep(log, deliveryService, time.Duration(interval))
}

func provideDeadlineReminderTask(
	log logger.Logger,
	deliveryService deadline_reminder.Service,
	interval DeadlineReminderInterval,
) *deadline_reminder.DeadlineReminder {
	return deadline_reminder.NewDeadlineReminder(log, deliveryService, time.Duration(interval))
}

func provideTaskList(
	expirySweepTask *expiry_sweep.ExpirySweep,
	deadlineReminderTask *deadline_reminder.DeadlineReminder,
) []background.Task {
	return []background.Task{
		expirySweepTask,
		deadlineReminderTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
