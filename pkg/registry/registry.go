// Package registry holds the named curve parameter sets. The table is built
// once at package initialization and never modified afterwards, so lookups
// are safe from any goroutine.
package registry

import (
	"math/big"
	"sort"

	"github.com/pkg/errors"

	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/pkg/curve"
	"github.com/smallyu/go-ecmath/pkg/ecmath"
	"github.com/smallyu/go-ecmath/pkg/hashing"
)

// Params is the full description of a named curve: its equation, base
// point, group order and the hash used when signing on it.
type Params struct {
	Name     string
	Form     curve.Form
	P        *big.Int
	A        *big.Int
	B        *big.Int
	Gx       *big.Int
	Gy       *big.Int
	N        *big.Int
	Cofactor *big.Int
	Hash     hashing.Algorithm
}

// Copy returns a deep copy of the parameters.
func (p Params) Copy() Params {
	c := p
	for _, f := range []**big.Int{&c.P, &c.A, &c.B, &c.Gx, &c.Gy, &c.N, &c.Cofactor} {
		if *f != nil {
			*f = new(big.Int).Set(*f)
		}
	}
	return c
}

// Curve builds the validated curve model for the parameters.
func (p Params) Curve() (*curve.Curve, error) {
	c, err := curve.New(p.Form, p.A, p.B, p.P)
	if err != nil {
		return nil, errors.Wrapf(err, "curve %s", p.Name)
	}
	return c, nil
}

// Generator builds the curve model and returns it together with the base
// point, which must lie on the curve.
func (p Params) Generator() (*curve.Curve, *curve.Affine, error) {
	c, err := p.Curve()
	if err != nil {
		return nil, nil, err
	}
	g, err := c.CreatePoint(p.Gx, p.Gy)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "generator of %s", p.Name)
	}
	return c, g, nil
}

var table map[string]Params

func init() {
	table = make(map[string]Params)
	for _, p := range standardCurves() {
		table[p.Name] = p
	}
	for _, ref := range curves.All() {
		p := fromReference(ref)
		table[p.Name] = p
	}
}

// Lookup returns a copy of the parameters registered under name, or an
// error of kind ecmath.ErrUnknownCurve.
func Lookup(name string) (Params, error) {
	p, ok := table[name]
	if !ok {
		return Params{}, ecmath.NewError(ecmath.ErrUnknownCurve, "unknown curve %q", name)
	}
	return p.Copy(), nil
}

// Names returns the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fromReference(ref curves.Reference) Params {
	a, b := ref.Coefficients()
	gx, gy := ref.Generator()
	n := ref.Order()
	return Params{
		Name:     ref.Name(),
		Form:     ref.Form(),
		P:        ref.Field(),
		A:        a,
		B:        b,
		Gx:       gx,
		Gy:       gy,
		N:        n,
		Cofactor: ref.Cofactor(),
		Hash:     hashing.ForOrder(n),
	}
}
