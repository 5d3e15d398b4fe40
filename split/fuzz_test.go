package split

import (
	"bytes"
	"testing"
)

// FuzzChunkBoundaries validates chunk-boundary independence: feeding the same
// input split at an arbitrary offset must behave exactly like a single-chunk
// feed, both for the element sequence and for the terminal error.
func FuzzChunkBoundaries(f *testing.F) {
	f.Add(`[{"a":1}, 2, "x,y", [3,4], null, {"s":"a\"b\\c"}]`, 5)
	f.Add("[]", 1)
	f.Add(`["a\\\"", "b"]`, 4)
	f.Add("[1,2,", 3)
	f.Add("  [ [1], {\"x\": \"]\"} ]  ", 9)
	f.Add("no array", 2)

	f.Fuzz(func(t *testing.T, input string, cut int) {
		feed := func(chunks ...[]byte) ([]byte, error) {
			var out bytes.Buffer
			sp, err := NewSplitter(func(element []byte) error {
				out.Write(element)
				out.WriteByte('\n')
				return nil
			})
			if err != nil {
				t.Fatal(err)
			}
			defer sp.Close()

			for _, chunk := range chunks {
				if err := sp.Feed(chunk); err != nil {
					return out.Bytes(), err
				}
			}

			return out.Bytes(), sp.Finish()
		}

		data := []byte(input)
		wantOut, wantErr := feed(data)

		if cut < 0 {
			cut = -cut
		}
		if len(data) > 0 {
			cut %= len(data)
		} else {
			cut = 0
		}

		gotOut, gotErr := feed(data[:cut], data[cut:])
		if !bytes.Equal(wantOut, gotOut) {
			t.Fatalf("output differs at cut %d: %q vs %q", cut, wantOut, gotOut)
		}
		if (wantErr == nil) != (gotErr == nil) {
			t.Fatalf("error differs at cut %d: %v vs %v", cut, wantErr, gotErr)
		}
	})
}
