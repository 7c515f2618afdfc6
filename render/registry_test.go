package render_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/render"
)

type money struct {
	Cents int64
}

func TestCustomRendererOverridesFallback(t *testing.T) {
	moneyType := reflect.TypeOf(money{})
	require.NoError(t, render.Register(moneyType, func(rv reflect.Value, c render.Context) (string, error) {
		return "newMoney(" + expr(t, rv.Interface().(money).Cents) + ")", nil
	}))
	defer resetMoney(t, moneyType)

	assert.Equal(t, "newMoney(99)", expr(t, money{Cents: 99}))
}

type priced struct {
	Label string
	Price money
}

func TestCustomRendererRecursesWithBreadcrumbs(t *testing.T) {
	moneyType := reflect.TypeOf(money{})
	require.NoError(t, render.Register(moneyType, func(rv reflect.Value, c render.Context) (string, error) {
		inner, err := c.Field("Cents", rv.Interface().(money).Cents)
		if err != nil {
			return "", err
		}
		return "newMoney(" + inner + ")", nil
	}))
	defer resetMoney(t, moneyType)

	got := expr(t, priced{Label: "book", Price: money{Cents: 1250}})
	assert.Contains(t, got, "Price: newMoney(1250)")
}

// re-registering the identity renderer is the closest thing to removal;
// the default registry has no per-entry delete on purpose
func resetMoney(t *testing.T, moneyType reflect.Type) {
	t.Helper()
	require.NoError(t, render.Register(moneyType, func(rv reflect.Value, c render.Context) (string, error) {
		inner, err := c.Field("Cents", rv.Interface().(money).Cents)
		if err != nil {
			return "", err
		}
		return "render_test.money{Cents: " + inner + "}", nil
	}))
}

func TestConcurrentRendersAreByteIdentical(t *testing.T) {
	order := sampleOrder()
	want := expr(t, order)

	workers := runtime.GOMAXPROCS(0) * 4
	const iterations = 200

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				got, err := render.Expression(order)
				if err != nil {
					t.Errorf("render failed: %v", err)
					return
				}
				if got != want {
					t.Errorf("non-deterministic output:\n%s", got)
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, want, expr(t, order), "output drifted after concurrent use")
}
