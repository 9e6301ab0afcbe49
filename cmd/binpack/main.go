package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/thebagchi/binpack/lib/codec"
	"github.com/thebagchi/binpack/lib/endian"
	"github.com/thebagchi/binpack/lib/format"
)

// demoFormat is the four-field record from the library's own concrete
// worked example: a big-endian u16, a space-padded 2-byte fixed string, a
// little-endian varuint, and a varchar keyed by a little-endian varuint
// length.
func demoFormat() *format.Format4[uint16, []byte, uint64, []byte] {
	return format.New4[uint16, []byte, uint64, []byte](
		codec.NewFixedInt[uint16](endian.Big),
		codec.NewFixedString(2, codec.SpacePadding),
		codec.NewVarUint(endian.Little, 0),
		codec.NewVarchar(codec.NewVarUint(endian.Little, 0)),
	)
}

func main() {
	var (
		id     = flag.Uint("id", 0, "16-bit id field")
		tag    = flag.String("tag", "", "2-byte space-padded tag field")
		count  = flag.Uint64("count", 0, "varuint count field")
		text   = flag.String("text", "", "varchar text field")
		decode = flag.String("decode", "", "hex-encoded record to decode instead of packing the other flags")
	)
	flag.Parse()

	f := demoFormat()

	if len(*decode) > 0 {
		buf, err := hex.DecodeString(*decode)
		if err != nil {
			fmt.Println("Error: ", err)
			os.Exit(1)
		}
		a, b, c, d, err := f.Unpack(buf)
		if err != nil {
			fmt.Println("Error: ", err)
			os.Exit(1)
		}
		fmt.Printf("id=%d tag=%q count=%d text=%q\n", a, b, c, d)
		return
	}

	buf, err := f.Pack(uint16(*id), []byte(*tag), *count, []byte(*text))
	if err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
	fmt.Println(hex.EncodeToString(buf))
}
