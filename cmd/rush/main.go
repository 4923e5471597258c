// Command rush fires concurrent bookings at one show of the demo catalog and
// prints how the seats were shared out.  It exits non-zero if the seat
// accounting does not balance.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/cinema-ticket-booking/internal/catalog"
	"github.com/iliyamo/cinema-ticket-booking/internal/clock"
	"github.com/iliyamo/cinema-ticket-booking/internal/idgen"
	"github.com/iliyamo/cinema-ticket-booking/internal/model"
	"github.com/iliyamo/cinema-ticket-booking/internal/registry"
	"github.com/iliyamo/cinema-ticket-booking/internal/reservation"
)

type options struct {
	movie     string
	customers int
	requests  int
	seats     int
	guests    int
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "rush:", err)
		os.Exit(1)
	}
}

func parse(args []string, out io.Writer) (options, error) {
	var o options
	fs := pflag.NewFlagSet("rush", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&o.movie, "movie", "Iron Man", "movie whose first show is booked")
	fs.IntVar(&o.customers, "customers", 20, "number of registered customers")
	fs.IntVar(&o.requests, "requests", 200, "number of concurrent booking requests")
	fs.IntVar(&o.seats, "seats", 3, "seats per request")
	fs.IntVar(&o.guests, "guests", 0, "additional requests made by unregistered guests")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.customers < 1 || o.requests < 0 || o.guests < 0 {
		return o, fmt.Errorf("customers must be positive and requests/guests non-negative")
	}
	return o, nil
}

// tally is the outcome of one rush.
type tally struct {
	show      *model.Show
	capacity  int
	issued    int
	booked    int
	remaining int
	failures  map[reservation.FailureKind]int
}

func (t tally) balanced() bool { return t.booked+t.remaining == t.capacity }

func rush(ctx context.Context, o options) (tally, error) {
	clk := clock.NewSystem()
	ix := catalog.Build(catalog.Demo(idgen.NewSequence(0), clk.Now()))
	shows := ix.Search(o.movie)
	if len(shows) == 0 {
		return tally{}, fmt.Errorf("no show for movie %q; have %v", o.movie, ix.Movies())
	}
	show := shows[0]

	customers := registry.New(idgen.NewSequence(0), clk, bcrypt.MinCost)
	svc := reservation.NewService(idgen.NewSequence(0), clk, reservation.WithDirectory(customers))

	who := make([]model.Requester, 0, o.customers)
	for i := 0; i < o.customers; i++ {
		c, err := customers.Register(ctx, "customer-"+strconv.Itoa(i), "secret")
		if err != nil {
			return tally{}, err
		}
		who = append(who, c)
	}

	pending := make([]<-chan reservation.Result, 0, o.requests+o.guests)
	for i := 0; i < o.requests; i++ {
		pending = append(pending, svc.ReserveAsync(ctx, show, who[i%len(who)], o.seats))
	}
	for i := 0; i < o.guests; i++ {
		pending = append(pending, svc.ReserveAsync(ctx, show, model.Guest{Name: "guest-" + strconv.Itoa(i)}, o.seats))
	}

	t := tally{
		show:     show,
		capacity: show.Cinema.Capacity(),
		failures: map[reservation.FailureKind]int{},
	}
	for _, ch := range pending {
		res := <-ch
		if res.Err != nil {
			t.failures[reservation.Kind(res.Err)]++
			continue
		}
		t.issued++
		t.booked += res.Ticket.Seats()
	}
	t.remaining = show.AvailableSeats()
	return t, nil
}

func run(ctx context.Context, args []string, out io.Writer) error {
	o, err := parse(args, out)
	if err != nil {
		return err
	}
	t, err := rush(ctx, o)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "show      %s\n", t.show)
	fmt.Fprintf(out, "capacity  %d\n", t.capacity)
	fmt.Fprintf(out, "tickets   %d (%d seats)\n", t.issued, t.booked)
	fmt.Fprintf(out, "remaining %d\n", t.remaining)

	kinds := make([]reservation.FailureKind, 0, len(t.failures))
	for k := range t.failures {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(out, "failed    %-18s %d\n", k, t.failures[k])
	}

	if !t.balanced() {
		return fmt.Errorf("seat accounting mismatch: booked %d + remaining %d != capacity %d", t.booked, t.remaining, t.capacity)
	}
	return nil
}
