package flash

import (
	"testing"

	"github.com/gabrielcoffee/mba-fullstack-frontend/pkg/view"
)

func TestRoundTrip(t *testing.T) {
	c := NewCodec([]byte("0123456789abcdef0123456789abcdef"), "flash", false)
	v, err := c.Encode(view.Flash{Kind: view.FlashSuccess, Message: "Pronto"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	f, err := c.Decode(v)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.Kind != view.FlashSuccess || f.Message != "Pronto" {
		t.Errorf("got %+v", f)
	}
}

func TestRejectsTamperedAndForeign(t *testing.T) {
	c := NewCodec([]byte("0123456789abcdef0123456789abcdef"), "flash", false)
	other := NewCodec([]byte("ffffffffffffffffffffffffffffffff"), "flash", false)

	v, _ := other.Encode(view.Flash{Kind: view.FlashInfo, Message: "x"})
	if _, err := c.Decode(v); err != ErrInvalid {
		t.Errorf("foreign key: err = %v", err)
	}
	if _, err := c.Decode("garbage"); err != ErrInvalid {
		t.Errorf("garbage: err = %v", err)
	}

	empty, _ := c.Encode(view.Flash{Kind: view.FlashInfo, Message: "  "})
	if _, err := c.Decode(empty); err != ErrInvalid {
		t.Errorf("blank message: err = %v", err)
	}
}
