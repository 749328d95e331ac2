package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/healthkernel/healthkernel-api/api"
	"github.com/healthkernel/healthkernel-api/background"
	"github.com/healthkernel/healthkernel-api/schema"
	"github.com/healthkernel/healthkernel-api/utils"
)

var (
	server *api.Server
	ormDB  *gorm.DB
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("healthkernel")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// loadGoalSettings resolves the evaluator parameters from configuration,
// falling back to the documented defaults key by key.
func loadGoalSettings() schema.GoalSettings {
	settings := schema.DefaultGoalSettings()

	if v := viper.GetInt("goals.tracking.recent_window_days"); v > 0 {
		settings.TrackingRecentWindowDays = v
	}
	settings.TrackingStartOverride = viper.GetString("goals.tracking.start_override")

	if v := viper.GetFloat64("goals.calories.burn_modifier"); v > 0 {
		settings.BurnModifier = v
	}
	if v := viper.GetFloat64("goals.calories.deficit_target_per_day"); v > 0 {
		settings.DeficitTargetPerDay = v
	}
	if viper.IsSet("goals.calories.min_observed_days") {
		settings.CaloriesMinObserved = viper.GetInt("goals.calories.min_observed_days")
	}

	if v := viper.GetFloat64("goals.steps.floor"); v > 0 {
		settings.StepsFloor = v
	}
	if v := viper.GetFloat64("goals.steps.long_term_target"); v > 0 {
		settings.StepsLongTermTarget = v
	}
	if viper.IsSet("goals.steps.ramp_fast") {
		settings.StepsRampFast = viper.GetFloat64("goals.steps.ramp_fast")
	}
	if viper.IsSet("goals.steps.ramp_slow") {
		settings.StepsRampSlow = viper.GetFloat64("goals.steps.ramp_slow")
	}
	if v := viper.GetInt("goals.steps.baseline_window_days"); v > 0 {
		settings.StepsBaselineWindow = v
	}
	if v := viper.GetInt("goals.steps.trailing_window_days"); v > 0 {
		settings.StepsTrailingWindow = v
	}

	return settings
}

func main() {
	var configFile string
	var runWorker bool

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down db store")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.BoolVar(&runWorker, "worker", false, "run the background task worker instead of the api server")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Static configuration tables are validated once here; a bad signal or
	// goal table never reaches request handling.
	if err := schema.ValidateSignalTable(); err != nil {
		log.Panic(err)
	}
	settings := loadGoalSettings()
	if err := settings.Validate(); err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Validated signal and goal tables")

	utils.InitI18NBundle()

	// Init task queue
	var conf = &machineryconf.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "healthkernel_background",
		ResultBackend: viper.GetString("redis.conn"),
	}
	machineryServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	if runWorker {
		manager := background.New(mongoClient, machineryServer, settings.TrackingStartOverride)
		if err := manager.RegisterTask(background.TrackingStartTaskName, manager.RefreshTrackingStart); err != nil {
			log.Panic(err)
		}
		log.WithField("prefix", "init").Info("Initialized background worker")

		initialCtx = nil
		cancelInitialization = nil

		log.Fatal(manager.Run())
		return
	}

	ormDB, err = gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}

	// Init http server
	server = api.NewServer(
		ormDB,
		mongoClient,
		machineryServer,
		settings)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
