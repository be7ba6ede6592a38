package network

import (
	"errors"
	"fmt"
	"net/netip"
)

// FailureKind classifies why a lookup produced no address.
type FailureKind int

const (
	// NetworkError covers transport failures: DNS, refused connections,
	// timeouts, TLS errors and interrupted bodies.
	NetworkError FailureKind = iota + 1
	// ParseError means a response arrived but was not {"ip": "<string>"}.
	ParseError
)

func (k FailureKind) String() string {
	switch k {
	case NetworkError:
		return "network_error"
	case ParseError:
		return "parse_error"
	default:
		return fmt.Sprintf("failure_kind(%d)", int(k))
	}
}

var (
	// ErrNetwork matches any Failure of kind NetworkError via errors.Is.
	ErrNetwork = errors.New("public ip lookup: network error")
	// ErrParse matches any Failure of kind ParseError via errors.Is.
	ErrParse = errors.New("public ip lookup: parse error")
)

// Failure is the error side of a Result.
type Failure struct {
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return f.Kind.String()
	}
	return fmt.Sprintf("%s: %v", f.Kind, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Is lets errors.Is(f, ErrNetwork) and errors.Is(f, ErrParse) match on kind.
func (f *Failure) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return f.Kind == NetworkError
	case ErrParse:
		return f.Kind == ParseError
	}
	return false
}

// Result is the outcome of a single lookup. Exactly one of Address
// (with Failure nil) or Failure is meaningful.
type Result struct {
	Address string
	Failure *Failure
}

// Success builds a successful Result carrying addr unchanged.
func Success(addr string) Result {
	return Result{Address: addr}
}

// Fail builds a failed Result.
func Fail(kind FailureKind, err error) Result {
	return Result{Failure: &Failure{Kind: kind, Err: err}}
}

// OK reports whether the lookup produced an address.
func (r Result) OK() bool {
	return r.Failure == nil
}

// Value returns the result in the usual (value, error) shape.
func (r Result) Value() (string, error) {
	if r.Failure != nil {
		return "", r.Failure
	}
	return r.Address, nil
}

// Outcome is a short label for logs and metrics: "success" or the
// failure kind.
func (r Result) Outcome() string {
	if r.Failure != nil {
		return r.Failure.Kind.String()
	}
	return "success"
}

// Addr parses the address as an IP literal. The resolver never rejects
// a value the service returns, so callers wanting a typed address must
// check ok.
func (r Result) Addr() (addr netip.Addr, ok bool) {
	if r.Failure != nil {
		return netip.Addr{}, false
	}
	addr, err := netip.ParseAddr(r.Address)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr, true
}
