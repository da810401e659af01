package caravan

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/smartcontractkit/caravan/queue"
	"github.com/smartcontractkit/caravan/types"
)

// printItems writes one line per item, marking the items that build on head.
func printItems(w io.Writer, head common.Hash, items []*queue.Item) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "queue is empty")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HASH\tPARENT\tTYPE\tSIGNATURES\t")
	for _, item := range items {
		marker := ""
		if item.Parent() == head {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s%s\t%s\t%s\t%d\t\n", marker, item.Hash().Hex(), item.Parent().Hex(), item.MessageType(), item.Confirmations())
	}

	return tw.Flush()
}

// printItem writes the rendered message of item followed by its signers.
func printItem(w io.Writer, item *queue.Item) error {
	msg := item.Message()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", msg.Title())
	fmt.Fprintf(&b, "  Hash:   %s\n", item.Hash().Hex())
	fmt.Fprintf(&b, "  Parent: %s\n", item.Parent().Hex())
	writeFields(&b, msg.Render(), 1)

	signers := item.Signatures().Signers()
	fmt.Fprintf(&b, "  Signatures (%d):\n", len(signers))
	for _, s := range signers {
		fmt.Fprintf(&b, "    %s\n", s.Hex())
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func writeFields(b *strings.Builder, fields []types.Field, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, f := range fields {
		if nested, ok := f.Value.([]types.Field); ok {
			fmt.Fprintf(b, "%s%s:\n", indent, f.Name)
			writeFields(b, nested, depth+1)

			continue
		}
		fmt.Fprintf(b, "%s%s: %s\n", indent, f.Name, formatValue(f.Value))
	}
}

func formatValue(v any) string {
	switch v := v.(type) {
	case common.Address:
		return v.Hex()
	case []common.Address:
		parts := make([]string, 0, len(v))
		for _, a := range v {
			parts = append(parts, a.Hex())
		}

		return "[" + strings.Join(parts, ", ") + "]"
	case hexutil.Bytes:
		return v.String()
	case []byte:
		return hexutil.Encode(v)
	default:
		return fmt.Sprint(v)
	}
}
