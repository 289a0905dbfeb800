package market

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

const validHeader = "symbol,reference_price,daily_change_percent,average_daily_volume,sector\n"

func TestLoadRegistry_OK(t *testing.T) {
	path := writeCatalog(t, validHeader+
		"BICC,8500,2.5,15000,Construction\n"+
		"etit,18,4.5,45000,Telecom\n")

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if got := len(reg.List()); got != 2 {
		t.Fatalf("want 2 instruments, got %d", got)
	}
	in, ok := reg.Get("ETIT")
	if !ok || in.Sector != "Telecom" || in.AverageDailyVolume != 45000 {
		t.Fatalf("unexpected instrument: %+v ok=%v", in, ok)
	}
}

func TestLoadRegistry_DuplicateLastWins(t *testing.T) {
	path := writeCatalog(t, validHeader+
		"BICC,8500,2.5,15000,Construction\n"+
		"BICC,9000,1.0,16000,Construction\n")

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	in, _ := reg.Get("BICC")
	if in.AverageDailyVolume != 16000 {
		t.Fatalf("expected last occurrence to win, got %+v", in)
	}
}

func TestLoadRegistry_Failures(t *testing.T) {
	cases := []struct {
		name    string
		content string
		errPart string
	}{
		{
			name:    "wrong header order",
			content: "reference_price,symbol,daily_change_percent,average_daily_volume,sector\nBICC,8500,2.5,15000,X\n",
			errPart: "invalid header",
		},
		{
			name:    "short header",
			content: "symbol,reference_price\nBICC,8500\n",
			errPart: "invalid header length",
		},
		{
			name:    "bad price",
			content: validHeader + "BICC,n/a,2.5,15000,Construction\n",
			errPart: "reference_price",
		},
		{
			name:    "bad volume",
			content: validHeader + "BICC,8500,2.5,lots,Construction\n",
			errPart: "average_daily_volume",
		},
		{
			name:    "missing column",
			content: validHeader + "BICC,8500,2.5,15000\n",
			errPart: "column count",
		},
		{
			name:    "empty catalog",
			content: validHeader,
			errPart: "no instruments",
		},
		{
			name:    "empty symbol",
			content: validHeader + " ,8500,2.5,15000,Construction\n",
			errPart: "empty symbol",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeCatalog(t, tc.content)
			_, err := LoadRegistry(path)
			if err == nil {
				t.Fatalf("expected error containing %q", tc.errPart)
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Fatalf("error %q does not mention %q", err, tc.errPart)
			}
		})
	}
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	if _, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
