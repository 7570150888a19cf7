package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	authinadapter "eventdeck/internal/modules/auth/adapter/in"
	authoutadapter "eventdeck/internal/modules/auth/adapter/out"
	authservice "eventdeck/internal/modules/auth/service"
	authusecase "eventdeck/internal/modules/auth/usecase"
	cataloginadapter "eventdeck/internal/modules/catalog/adapter/in"
	catalogoutadapter "eventdeck/internal/modules/catalog/adapter/out"
	catalogout "eventdeck/internal/modules/catalog/port/out"
	catalogservice "eventdeck/internal/modules/catalog/service"
	catalogusecase "eventdeck/internal/modules/catalog/usecase"
	deckinadapter "eventdeck/internal/modules/deck/adapter/in"
	deckoutadapter "eventdeck/internal/modules/deck/adapter/out"
	deckservice "eventdeck/internal/modules/deck/service"
	deckusecase "eventdeck/internal/modules/deck/usecase"
	locationinadapter "eventdeck/internal/modules/location/adapter/in"
	locationoutadapter "eventdeck/internal/modules/location/adapter/out"
	locationout "eventdeck/internal/modules/location/port/out"
	locationservice "eventdeck/internal/modules/location/service"
	locationusecase "eventdeck/internal/modules/location/usecase"
	matchesinadapter "eventdeck/internal/modules/matches/adapter/in"
	matchesoutadapter "eventdeck/internal/modules/matches/adapter/out"
	matchesout "eventdeck/internal/modules/matches/port/out"
	matchesservice "eventdeck/internal/modules/matches/service"
	matchesusecase "eventdeck/internal/modules/matches/usecase"
	plugininadapter "eventdeck/internal/modules/plugin/adapter/in"
	pluginoutadapter "eventdeck/internal/modules/plugin/adapter/out"
	pluginservice "eventdeck/internal/modules/plugin/service"
	pluginusecase "eventdeck/internal/modules/plugin/usecase"
	profileinadapter "eventdeck/internal/modules/profile/adapter/in"
	profileoutadapter "eventdeck/internal/modules/profile/adapter/out"
	profileservice "eventdeck/internal/modules/profile/service"
	profileusecase "eventdeck/internal/modules/profile/usecase"
	"eventdeck/internal/platform/clock"
	"eventdeck/internal/platform/config"
	"eventdeck/internal/platform/geo"
	"eventdeck/internal/platform/id"
	"eventdeck/internal/platform/logging"
	uiapp "eventdeck/internal/ui/app"
)

type App struct {
	VaultPath   string
	Log         hclog.Logger
	AuthCLI     authinadapter.CLIHandler
	CatalogCLI  cataloginadapter.CLIHandler
	DeckCLI     deckinadapter.CLIHandler
	DeckTUI     deckinadapter.TUIHandler
	MatchesCLI  matchesinadapter.CLIHandler
	ProfileCLI  profileinadapter.CLIHandler
	LocationCLI locationinadapter.CLIHandler
	PluginCLI   plugininadapter.CLIHandler

	closers []io.Closer
}

func New(cfg config.Config) (*App, error) {
	log, logCloser, err := logging.New(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	app := &App{VaultPath: cfg.VaultPath, Log: log, closers: []io.Closer{logCloser}}

	clk := clock.SystemClock{}
	uuids := id.UUID{}

	pluginUC := pluginusecase.NewInteractor(pluginservice.NewPluginService(
		pluginoutadapter.NewFileManifestStore(cfg.DataDir, log),
		pluginoutadapter.NewGRPCHost(log),
		log,
	))

	providers := []catalogout.Provider{catalogoutadapter.NewSampleProvider()}
	vaultEvents := catalogoutadapter.NewVaultEventStore(cfg.VaultPath)
	providers = append(providers, vaultEvents)
	if len(cfg.Feeds) > 0 {
		providers = append(providers, catalogoutadapter.NewFeedProvider(cfg.Feeds))
	}
	providers = append(providers, catalogoutadapter.NewPluginProvider(pluginUC, cfg.VaultPath))
	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(
		clk,
		id.RandomHex{},
		vaultEvents,
		catalogoutadapter.NewPDFFlyerReader(),
		log,
		providers...,
	))

	matchStore, err := newMatchStore(cfg, app)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	matchesUC := matchesusecase.NewInteractor(
		matchesservice.NewMatchService(matchStore, clk, uuids, log),
		catalogUC,
	)

	deckUC := deckusecase.NewInteractor(deckservice.NewDeckService(
		catalogUC,
		deckoutadapter.NewMatchesSink(matchesUC),
		clk,
		uuids,
		log,
	))

	authUC := authusecase.NewInteractor(authservice.NewAuthService(
		authoutadapter.NewFileSignInStore(cfg.DataDir),
		clk,
		uuids,
		log,
	))

	locationUC := locationusecase.NewInteractor(locationservice.NewLocationService(
		locationservice.Options{Enabled: cfg.Location.Enabled, Timeout: cfg.Location.Timeout},
		clk,
		log,
		locators(cfg)...,
	))

	profileUC := profileusecase.NewInteractor(
		profileservice.NewProfileService(profileoutadapter.NewYAMLProfileStore(cfg.VaultPath), log),
		profileusecase.Sources{Accounts: authUC, Matches: matchesUC, Location: locationUC},
	)

	app.AuthCLI = authinadapter.NewCLIHandler(authUC)
	app.CatalogCLI = cataloginadapter.NewCLIHandler(catalogUC)
	app.DeckCLI = deckinadapter.NewCLIHandler(deckUC)
	app.DeckTUI = deckinadapter.NewTUIHandler(deckUC)
	app.MatchesCLI = matchesinadapter.NewCLIHandler(matchesUC)
	app.ProfileCLI = profileinadapter.NewCLIHandler(profileUC)
	app.LocationCLI = locationinadapter.NewCLIHandler(locationUC)
	app.PluginCLI = plugininadapter.NewCLIHandler(pluginUC)
	log.Debug("app ready", "vault", cfg.VaultPath, "match_store", cfg.MatchStore, "providers", len(providers))
	return app, nil
}

// Close releases the database and the log file.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func newMatchStore(cfg config.Config, app *App) (matchesout.Store, error) {
	if cfg.MatchStore == config.MatchStoreMemory {
		return matchesoutadapter.NewMemoryStore(), nil
	}
	store, err := matchesoutadapter.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open match store: %w", err)
	}
	app.closers = append(app.closers, store)
	return store, nil
}

// locators puts a configured position ahead of the network lookup.
func locators(cfg config.Config) []locationout.Locator {
	var out []locationout.Locator
	coords := geo.Coordinates{Latitude: cfg.Location.Latitude, Longitude: cfg.Location.Longitude}
	if !coords.IsZero() {
		out = append(out, locationoutadapter.NewStaticLocator(coords, ""))
	}
	lookupURL := cfg.Location.LookupURL
	if lookupURL == "" {
		lookupURL = locationoutadapter.DefaultLookupURL
	}
	timeout := cfg.Location.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	out = append(out, locationoutadapter.NewIPLocator(lookupURL, &http.Client{Timeout: timeout}))
	return out
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.VaultPath, uiapp.Ports{
		Auth:     app.AuthCLI,
		Deck:     app.DeckTUI,
		Matches:  app.MatchesCLI,
		Profile:  app.ProfileCLI,
		Location: app.LocationCLI,
		Plugin:   app.PluginCLI,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
