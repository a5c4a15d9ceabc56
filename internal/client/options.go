package client

import (
	"flag"
	"fmt"
)

// Options are the command-line choices of one client run.
type Options struct {
	OrderID           string
	Total             string
	VPA               string
	PaymentScreenshot string
	Copy              bool

	Health  bool
	Lookup  string
	History string

	// Files are the positional arguments.
	Files []string
}

// RegisterFlags registers the client flags on fs. The flag set is parsed
// later together with the configuration flags.
func RegisterFlags(fs *flag.FlagSet) *Options {
	opts := &Options{}

	fs.StringVar(&opts.OrderID, "order-id", "", "Order id (generated when empty)")
	fs.StringVar(&opts.Total, "total", "0", "Order total, e.g. 149.50")
	fs.StringVar(&opts.VPA, "vpa", "", "Payer UPI VPA, e.g. name@okbank")
	fs.StringVar(&opts.PaymentScreenshot, "payment-screenshot", "", "File that is the payment screenshot")
	fs.BoolVar(&opts.Copy, "copy", false, "Copy the order id to the clipboard after upload")
	fs.BoolVar(&opts.Health, "health", false, "Check the ingestion endpoint and exit")
	fs.StringVar(&opts.Lookup, "lookup", "", "Show the endpoint's record of an order and exit")
	fs.StringVar(&opts.History, "history", "", "Show the local journal of an order and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] <file>...\n\nFlags:\n", fs.Name())
		fs.PrintDefaults()
	}

	return opts
}

func (o *Options) validate() error {
	modes := 0
	if o.Health {
		modes++
	}
	if o.Lookup != "" {
		modes++
	}
	if o.History != "" {
		modes++
	}

	switch {
	case modes > 1:
		return ErrConflictingModes
	case modes == 0 && len(o.Files) == 0 && o.PaymentScreenshot == "":
		return ErrNoFilesGiven
	}
	return nil
}
