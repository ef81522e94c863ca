package binding

import (
	"github.com/seitarof/gen-xsd/internal/param"
	"github.com/seitarof/gen-xsd/internal/resolver"
)

const (
	StyleRPC   = "rpc"
	UseEncoded = "encoded"
)

// RpcEncoded types parameters with the rpc/encoded rules: arrays become
// soapenc arrays and nested objects are referenced as elements.
type RpcEncoded struct {
	resolver resolver.Resolver
}

// NewRpcEncoded returns the rpc/encoded style. opts are passed to the
// underlying resolver.
func NewRpcEncoded(opts ...resolver.Option) *RpcEncoded {
	return &RpcEncoded{resolver: resolver.New(opts...)}
}

func (s *RpcEncoded) BindingStyle() string { return StyleRPC }

func (s *RpcEncoded) BindingUse() string { return UseEncoded }

func (s *RpcEncoded) TypeParameters(params ...param.Description) ([]resolver.TypeDefinition, error) {
	return s.resolver.TypeParameters(params...)
}
