package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/MKhiriev/go-house-bids/internal/adapter"
	"github.com/MKhiriev/go-house-bids/internal/app"
	"github.com/MKhiriev/go-house-bids/internal/logger"
	"github.com/MKhiriev/go-house-bids/models"
)

type command struct {
	usage string
	nArgs int
	run   func(ctx context.Context, args []string) error
}

type App struct {
	adapter  adapter.ServerAdapter
	out      io.Writer
	commands map[string]command

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, errors.New("nil server adapter")
	}

	a := &App{adapter: serverAdapter, out: out, logger: logger}
	a.commands = map[string]command{
		"register":    {usage: "register <username> <password>", nArgs: 2, run: a.register},
		"login":       {usage: "login <username> <password>", nArgs: 2, run: a.login},
		"houses":      {usage: "houses", nArgs: 0, run: a.houses},
		"house":       {usage: "house <house-id>", nArgs: 1, run: a.house},
		"user-houses": {usage: "user-houses <user-id>", nArgs: 1, run: a.userHouses},
		"add-house":   {usage: "add-house <address> <price> <photo-path>", nArgs: 3, run: a.addHouse},
		"bid":         {usage: "bid <house-id> <amount>", nArgs: 2, run: a.bid},
		"bids":        {usage: "bids <house-id>", nArgs: 1, run: a.bids},
		"user":        {usage: "user <user-id>", nArgs: 1, run: a.user},
		"me":          {usage: "me", nArgs: 0, run: a.me},
		"rename":      {usage: "rename <new-username>", nArgs: 1, run: a.rename},
	}
	return a, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
	if len(args)-1 != cmd.nArgs {
		return fmt.Errorf("%w, usage: %s", ErrUsage, cmd.usage)
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(ctx, args[1:])
}

// Usage writes the list of commands to w.
func (a *App) Usage(w io.Writer) {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "commands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", a.commands[name].usage)
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	if err := a.adapter.Register(ctx, models.Credentials{Username: args[0], Password: args[1]}); err != nil {
		return err
	}
	return a.print(models.MessageResponse{Message: app.MsgRegistered})
}

// login prints the token so it can be exported as CLIENT_TOKEN.
func (a *App) login(ctx context.Context, args []string) error {
	token, err := a.adapter.Login(ctx, models.Credentials{Username: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	return a.print(models.TokenResponse{Token: token})
}

func (a *App) houses(ctx context.Context, _ []string) error {
	houses, err := a.adapter.ListHouses(ctx)
	if err != nil {
		return err
	}
	return a.print(houses)
}

func (a *App) house(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	house, err := a.adapter.GetHouse(ctx, id)
	if err != nil {
		return err
	}
	return a.print(house)
}

func (a *App) userHouses(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	houses, err := a.adapter.ListUserHouses(ctx, id)
	if err != nil {
		return err
	}
	return a.print(houses)
}

func (a *App) addHouse(ctx context.Context, args []string) error {
	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%w: price %q is not a number", ErrUsage, args[1])
	}

	photo, err := os.Open(args[2])
	if err != nil {
		return fmt.Errorf("open photo: %w", err)
	}
	defer photo.Close()

	if err = a.adapter.AddHouse(ctx, args[0], price, filepath.Base(args[2]), photo); err != nil {
		return err
	}
	return a.print(models.MessageResponse{Message: app.MsgHouseAdded})
}

func (a *App) bid(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("%w: amount %q is not a number", ErrUsage, args[1])
	}

	if err = a.adapter.PlaceBid(ctx, id, amount); err != nil {
		return err
	}
	return a.print(models.MessageResponse{Message: app.MsgBidPlaced})
}

func (a *App) bids(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	bids, err := a.adapter.ListBids(ctx, id)
	if err != nil {
		return err
	}
	return a.print(bids)
}

func (a *App) user(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	user, err := a.adapter.GetUser(ctx, id)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) me(ctx context.Context, _ []string) error {
	user, err := a.adapter.CurrentUser(ctx)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) rename(ctx context.Context, args []string) error {
	if err := a.adapter.UpdateUsername(ctx, args[0]); err != nil {
		return err
	}
	return a.print(models.MessageResponse{Message: app.MsgUsernameUpdated})
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid id", ErrUsage, s)
	}
	return id, nil
}
