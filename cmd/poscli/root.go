package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MarcGrol/cloverconnect/client/checkout"
	"github.com/MarcGrol/cloverconnect/client/session"
	"github.com/MarcGrol/cloverconnect/lib/myhttpclient"
	"github.com/MarcGrol/cloverconnect/lib/mylog"
	"github.com/MarcGrol/cloverconnect/lib/mystore"
	"github.com/MarcGrol/cloverconnect/lib/mytime"
	"github.com/MarcGrol/cloverconnect/lib/myuuid"
	"github.com/MarcGrol/cloverconnect/services/oauth/challenge"
)

const defaultServer = "http://localhost:3000"

type cliConfig struct {
	Server    string `mapstructure:"server"`
	Store     string `mapstructure:"store"`
	StoreDir  string `mapstructure:"store_dir"`
	RedisAddr string `mapstructure:"redis_addr"`
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "poscli",
		Short:         "poscli - Clover point of sale from the command line",
		Long:          `poscli connects to a Clover merchant through the payment relay server, builds orders and takes payments.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Log relay traffic and token handling to stderr")
	flags.String("config", "", "Config file (default ~/.poscli/config.yaml)")
	flags.String("server", defaultServer, "Base url of the relay server")
	flags.String("store", string(mystore.BackendFile), "Credential store backend (memory, file, redis, datastore)")
	flags.String("store-dir", defaultStoreDir(), "Directory of the file store")
	flags.String("redis-addr", "localhost:6379", "Address of the redis store")

	_ = v.BindPFlag("server", flags.Lookup("server"))
	_ = v.BindPFlag("store", flags.Lookup("store"))
	_ = v.BindPFlag("store_dir", flags.Lookup("store-dir"))
	_ = v.BindPFlag("redis_addr", flags.Lookup("redis-addr"))
	v.SetEnvPrefix("POSCLI")
	v.AutomaticEnv()

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			mylog.SetMinimumSeverity(mylog.SeverityDebug)
		} else if os.Getenv("LOG_LEVEL") == "" {
			mylog.SetMinimumSeverity(mylog.SeverityWarn)
		}
	}

	loader := &configLoader{v: v}

	rootCmd.AddCommand(connectCmd(loader))
	rootCmd.AddCommand(disconnectCmd(loader))
	rootCmd.AddCommand(merchantCmd(loader))
	rootCmd.AddCommand(orderCmd(loader))
	rootCmd.AddCommand(paymentCmd(loader))
	rootCmd.AddCommand(transactionsCmd(loader))
	rootCmd.AddCommand(healthCmd(loader))

	return rootCmd
}

type configLoader struct {
	v *viper.Viper
}

// Load merges flags, POSCLI_* environment variables and the yaml config file, in that order of precedence.
func (l *configLoader) Load(cmd *cobra.Command) (cliConfig, error) {
	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile = filepath.Join(defaultStoreDir(), "config.yaml")
	}

	_, err := os.Stat(configFile)
	if err == nil {
		l.v.SetConfigFile(configFile)
		l.v.SetConfigType("yaml")
		err = l.v.ReadInConfig()
		if err != nil {
			return cliConfig{}, fmt.Errorf("error reading config file %s: %s", configFile, err)
		}
	}

	cfg := cliConfig{}
	err = l.v.Unmarshal(&cfg)
	if err != nil {
		return cliConfig{}, fmt.Errorf("error parsing config: %s", err)
	}
	if cfg.Server == "" {
		cfg.Server = defaultServer
	}

	return cfg, nil
}

func defaultStoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".poscli"
	}
	return filepath.Join(home, ".poscli")
}

type app struct {
	connector *session.Connector
	scheduler *session.Scheduler
	api       checkout.PosAPI
	workflow  *checkout.Workflow
	out       io.Writer
	cleanup   func()
}

func newApp(c context.Context, cfg cliConfig, out io.Writer, errOut io.Writer) (*app, error) {
	opts := mystore.Options{
		Backend:   mystore.Backend(cfg.Store),
		Dir:       cfg.StoreDir,
		RedisAddr: cfg.RedisAddr,
	}

	entries, closeEntries, err := mystore.New[session.Entry](c, opts)
	if err != nil {
		return nil, fmt.Errorf("error opening credential store: %s", err)
	}
	drafts, closeDrafts, err := mystore.New[checkout.Draft](c, opts)
	if err != nil {
		closeEntries()
		return nil, fmt.Errorf("error opening draft store: %s", err)
	}

	notify := func(kind session.NotificationKind, message string) {
		fmt.Fprintf(errOut, "[%s] %s\n", kind, message)
	}
	onReauth := func() {
		fmt.Fprintln(errOut, "Run 'poscli connect start' to connect again")
	}

	nower := mytime.RealNower{}
	store := session.NewCredentialStore(entries)
	exchanger := session.NewExchangeClient(cfg.Server, myhttpclient.NewJSONHTTPClient(nil, nil))
	scheduler := session.NewScheduler(store, exchanger, nower, mytime.RealAfterFunc, notify, onReauth)
	dispatcher := session.NewDispatcher(cfg.Server, store, scheduler, nower, session.RelaySender)
	connector := session.NewConnector(cfg.Server, store, exchanger, challenge.NewRandomStringer(), dispatcher, scheduler, nower, notify)
	api := checkout.NewPosAPI(dispatcher)

	return &app{
		connector: connector,
		scheduler: scheduler,
		api:       api,
		workflow:  checkout.NewWorkflow(api, drafts, myuuid.ShortUUIDer{}, notify),
		out:       out,
		cleanup: func() {
			scheduler.Stop()
			closeDrafts()
			closeEntries()
		},
	}, nil
}

// withApp runs f with the components wired from the effective configuration.
func withApp(loader *configLoader, f func(c context.Context, a *app, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loader.Load(cmd)
		if err != nil {
			return err
		}

		c := cmd.Context()
		if c == nil {
			c = context.Background()
		}

		a, err := newApp(c, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.cleanup()

		return f(c, a, args)
	}
}
