package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	reuseport "github.com/kavu/go_reuseport"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"

	"github.com/luma/skiff/client"
	"github.com/luma/skiff/internal/env"
)

var (
	// The host the key/value server is running on
	host string

	// The port the key/value server is listening on
	port int

	// The port to listen for http requests on
	httpPort string
)

func init() {
	flags := GatewayCmd.PersistentFlags()

	flags.StringVarP(&host, "host", "a", "", "The host the key/value server is running on")
	flags.IntVarP(&port, "port", "p", 0, "The port the key/value server is listening on")
	flags.StringVar(&httpPort, "http-port", "", "The port to listen to HTTP requests on")
}

var GatewayCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Serve an HTTP front door onto a key/value server",
	Long: `Serve an HTTP front door onto a key/value server.

Usage
	skiff gateway

`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ctx, signalStop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
		defer signalStop()

		conf, err := env.LoadConfig(ctx)
		if err != nil {
			return err
		}

		// Flags beat the environment
		if host == "" {
			host = conf.Host
		}
		if port == 0 {
			port = conf.Port
		}
		if httpPort == "" {
			httpPort = conf.HTTPPort
		}

		log, err := env.MakeLogger(conf.DebugHTTP)
		if err != nil {
			return err
		}

		fileLimit, err := setFileLimit()
		if err != nil {
			return err
		}

		log.Info("Set file limit", zap.Uint64("fileLimit", fileLimit))

		kv := client.New(client.Options{
			Host: host,
			Port: port,
			Log:  log.Named("client"),
		})

		router := setupRouter(conf.DebugHTTP, log)
		addRoutes(router, kv)

		listener, err := reuseport.Listen("tcp", net.JoinHostPort("0.0.0.0", httpPort))
		if err != nil {
			return err
		}

		s := &http.Server{
			Handler: router,
		}

		// Initializing the server in a goroutine so that
		// it won't block the graceful shutdown handling below
		go func() {
			if err := s.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("Http server errored", zap.Error(err))
			}
		}()

		log.Info("Listening",
			zap.Any("config", conf),
			zap.String("host", host),
			zap.Int("port", port),
			zap.String("httpPort", httpPort))

		// Listen for the interrupt signal.
		<-ctx.Done()

		// Restore default behavior on the interrupt signal and notify user of shutdown.
		signalStop()
		log.Info("Shutting down gracefully, press Ctrl+C again to force")

		// The context is used to inform the server it has 5 seconds to finish
		// the request it is currently handling
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.SetKeepAlivesEnabled(false)

		if err := s.Shutdown(shutdownCtx); err != nil {
			log.Error("Http server forced to shutdown", zap.Error(err))
		}

		if err := kv.Close(); err != nil {
			log.Error("Client connections did not close cleanly", zap.Error(err))
		}

		log.Info("Exiting")
		return nil
	},
}

func addRoutes(router *gin.Engine, kv *client.Client) {
	router.GET("/ping", func(c *gin.Context) {
		if _, err := kv.Ping(); err != nil {
			c.String(http.StatusBadGateway, err.Error())
			return
		}

		c.String(http.StatusOK, "pong")
	})

	router.GET("/keys/:key", func(c *gin.Context) {
		key := c.Param("key")

		value, err := kv.Get(key)
		if errors.Is(err, client.ErrNil) {
			c.Data(http.StatusNotFound, "application/json", jsonBody("error", "no such key"))
			return
		}
		if err != nil {
			c.Data(http.StatusBadGateway, "application/json", jsonBody("error", err.Error()))
			return
		}

		body := jsonBody("key", key)
		body, _ = sjson.SetBytes(body, "value", value)
		c.Data(http.StatusOK, "application/json", body)
	})

	router.PUT("/keys/:key", func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			c.Data(http.StatusBadRequest, "application/json", jsonBody("error", err.Error()))
			return
		}

		value := gjson.GetBytes(raw, "value")
		if !value.Exists() {
			c.Data(http.StatusBadRequest, "application/json", jsonBody("error", "body must carry a value field"))
			return
		}

		if err := kv.Set(c.Param("key"), value.String()); err != nil {
			c.Data(http.StatusBadGateway, "application/json", jsonBody("error", err.Error()))
			return
		}

		c.Data(http.StatusOK, "application/json", jsonBody("key", c.Param("key")))
	})

	router.DELETE("/keys/:key", func(c *gin.Context) {
		removed, err := kv.Del(c.Param("key"))
		if err != nil {
			c.Data(http.StatusBadGateway, "application/json", jsonBody("error", err.Error()))
			return
		}

		body, _ := sjson.SetBytes([]byte(`{}`), "removed", removed)
		c.Data(http.StatusOK, "application/json", body)
	})

	router.POST("/publish/:channel", func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			c.Data(http.StatusBadRequest, "application/json", jsonBody("error", err.Error()))
			return
		}

		value := gjson.GetBytes(raw, "value")
		if !value.Exists() {
			c.Data(http.StatusBadRequest, "application/json", jsonBody("error", "body must carry a value field"))
			return
		}

		receivers, err := kv.Publish(c.Param("channel"), value.String())
		if err != nil {
			c.Data(http.StatusBadGateway, "application/json", jsonBody("error", err.Error()))
			return
		}

		body, _ := sjson.SetBytes([]byte(`{}`), "receivers", receivers)
		c.Data(http.StatusOK, "application/json", body)
	})
}

func jsonBody(field, value string) []byte {
	body, _ := sjson.SetBytes([]byte(`{}`), field, value)
	return body
}

func setupRouter(debugHTTP bool, log *zap.Logger) *gin.Engine {
	gin.DisableConsoleColor()
	if !debugHTTP {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Add a ginzap middleware, which:
	//   - Logs all requests, like a combined access and error log.
	//   - Logs to stdout.
	//   - RFC3339 with UTC time format.
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))

	r.Use(ginzap.GinzapWithConfig(log, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/ping"},
	}))

	// Logs all panic to error log
	//   - stack means whether output the stack info.
	r.Use(ginzap.RecoveryWithZap(log, true))

	return r
}

func setFileLimit() (uint64, error) {
	var rLimit syscall.Rlimit

	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		return 0, err
	}

	rLimit.Cur = rLimit.Max
	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		return 0, err
	}

	return rLimit.Cur, nil
}
