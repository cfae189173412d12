package encoder

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"omibyte.io/svdenc/config"
	"omibyte.io/svdenc/svd"
)

// EncodePeripherals encodes independent peripherals concurrently. The result
// keeps the order of the input. The first failure cancels the remaining work
// and is returned as is.
func EncodePeripherals(ctx context.Context, peripherals []*svd.Peripheral, cfg *config.Config) ([]*Element, error) {
	cfg = orZero(cfg)
	out := make([]*Element, len(peripherals))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range peripherals {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, err := encodePeripheral(p, cfg)
			if err != nil {
				return err
			}
			out[i] = e
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// NewPeripherals wraps encoded peripherals in a "peripherals" element.
func NewPeripherals(peripherals []*Element) *Element {
	e := NewElement("peripherals")
	for _, p := range peripherals {
		e.appendChild(p)
	}
	return e
}
