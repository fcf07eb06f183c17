package catalog

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Size strings use a comma as decimal separator ("1,90 KB"), matching
// the display format of the metadata source.
var sizePrinter = message.NewPrinter(language.German)

// megabyteRatios maps a size unit to its megabyte conversion factor.
var megabyteRatios = map[string]float64{
	"Bytes": 1.0 / (1024 * 1024),
	"KB":    1.0 / 1024,
	"MB":    1,
	"GB":    1024,
	"TB":    1024 * 1024,
}

// ToMegabytes converts a locale-formatted size string like "60 Bytes",
// "1,90 KB" or "1,80 GB" to megabytes, rounding up to two decimals.
// Unknown units pass through unchanged so that future columns keep
// working instead of failing the record.
func ToMegabytes(size string) string {
	value, unit, ok := strings.Cut(size, " ")
	if !ok {
		return size
	}
	ratio, ok := megabyteRatios[unit]
	if !ok {
		return size
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
	if err != nil {
		return size
	}
	// Round UP to two decimals so the reported size never understates.
	mb := math.Ceil(n*ratio*100) / 100
	return sizePrinter.Sprintf("%v MB", number.Decimal(mb,
		number.NoSeparator(),
		number.MinFractionDigits(1),
		number.MaxFractionDigits(2)))
}

// formatSize renders a byte count the way file managers display it:
// plain bytes below 1 KiB, otherwise two decimals in the next unit.
func formatSize(bytes int64) string {
	if bytes < 1024 {
		return strconv.FormatInt(bytes, 10) + " Bytes"
	}
	units := []string{"KB", "MB", "GB", "TB"}
	value := float64(bytes)
	unit := ""
	for _, unit = range units {
		value /= 1024
		if value < 1024 {
			break
		}
	}
	return sizePrinter.Sprintf("%v %s", number.Decimal(value,
		number.NoSeparator(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)), unit)
}
