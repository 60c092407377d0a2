package structs

import "net"

// EtherType is the 6-byte Ethernet/MAC-address leaf descriptor, grounded
// the same way as the IP leaves on net.HardwareAddr (SPEC_FULL.md §4's
// original_source-supplemented leaf catalogue).
var EtherType = &Type{
	Label: "ether",
	Class: ClassPrimitive,
	Size:  6,
	Ops: Ops{
		Init: func(t *Type, v *Value) error {
			v.prim = make(net.HardwareAddr, 6)
			return nil
		},
		Copy: func(t *Type, src, dst *Value) error {
			mac := src.prim.(net.HardwareAddr)
			out := make(net.HardwareAddr, len(mac))
			copy(out, mac)
			dst.prim = out
			return nil
		},
		Equal: func(t *Type, a, b *Value) bool {
			am, bm := a.prim.(net.HardwareAddr), b.prim.(net.HardwareAddr)
			if len(am) != len(bm) {
				return false
			}
			for i := range am {
				if am[i] != bm[i] {
					return false
				}
			}
			return true
		},
		Ascify: func(t *Type, v *Value) (string, error) {
			return v.prim.(net.HardwareAddr).String(), nil
		},
		Binify: func(t *Type, text string, v *Value) error {
			mac, err := net.ParseMAC(text)
			if err != nil || len(mac) != 6 {
				return errInvalid("", "invalid ether address %q", text)
			}
			v.prim = mac
			return nil
		},
		Encode: func(t *Type, v *Value) ([]byte, error) {
			out := make([]byte, 6)
			copy(out, v.prim.(net.HardwareAddr))
			return out, nil
		},
		Decode: func(t *Type, data []byte, v *Value) (int, error) {
			if len(data) < 6 {
				return 0, errInvalid("", "truncated ether address")
			}
			mac := make(net.HardwareAddr, 6)
			copy(mac, data[:6])
			v.prim = mac
			return 6, nil
		},
		Uninit: nothingUninit,
	},
}
