package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/healthkernel/healthkernel-api/store"
)

// BackgroundManager runs the task queue workers for the healthkernel api
type BackgroundManager struct {
	health store.HealthStore

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(mongoClient *mongo.Client, taskServer *machinery.Server, trackingStartOverride string) *BackgroundManager {
	healthStore := store.NewHealthStore(
		mongoClient,
		viper.GetString("mongo.database"),
		trackingStartOverride,
	)

	return &BackgroundManager{
		health:     healthStore,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("healthkernel-worker", 5)
	return m.worker.Launch()
}
