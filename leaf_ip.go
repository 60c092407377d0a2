package structs

import "net"

// NewIPType builds an IP-address leaf descriptor. width selects the wire
// size: 4 for IPv4, 16 for IPv6. Text form is the usual dotted/colon
// notation via net.IP's String/ParseIP, grounded on original_source's
// ip4/ip6 leaf which wraps the same addressing primitives (DESIGN.md's
// standard-library justification: no pack example carries a
// networking stack beyond net/net.IP, so this stays on the standard
// library by design).
func NewIPType(label string, width int) *Type {
	t := &Type{Label: label, Class: ClassPrimitive, Size: uintptr(width)}
	t.Ops = Ops{
		Init: func(t *Type, v *Value) error {
			v.prim = make(net.IP, width)
			return nil
		},
		Copy: func(t *Type, src, dst *Value) error {
			ip := src.prim.(net.IP)
			out := make(net.IP, len(ip))
			copy(out, ip)
			dst.prim = out
			return nil
		},
		Equal: func(t *Type, a, b *Value) bool {
			return a.prim.(net.IP).Equal(b.prim.(net.IP))
		},
		Ascify: func(t *Type, v *Value) (string, error) {
			return v.prim.(net.IP).String(), nil
		},
		Binify: func(t *Type, text string, v *Value) error {
			ip := net.ParseIP(text)
			if ip == nil {
				return errInvalid("", "invalid %s address %q", t.Label, text)
			}
			if width == 4 {
				ip4 := ip.To4()
				if ip4 == nil {
					return errInvalid("", "%q is not an IPv4 address", text)
				}
				v.prim = ip4
			} else {
				v.prim = ip.To16()
			}
			return nil
		},
		Encode: func(t *Type, v *Value) ([]byte, error) {
			ip := v.prim.(net.IP)
			out := make([]byte, width)
			if width == 4 {
				copy(out, ip.To4())
			} else {
				copy(out, ip.To16())
			}
			return out, nil
		},
		Decode: func(t *Type, data []byte, v *Value) (int, error) {
			if len(data) < width {
				return 0, errInvalid("", "truncated %s address", t.Label)
			}
			ip := make(net.IP, width)
			copy(ip, data[:width])
			v.prim = ip
			return width, nil
		},
		Uninit: nothingUninit,
	}
	return t
}

// IP4Type and IP6Type are the canonical fixed-width IP address leaves.
var (
	IP4Type = NewIPType("ip4", 4)
	IP6Type = NewIPType("ip6", 16)
)
