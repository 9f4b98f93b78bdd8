package rates

import (
	"maps"
	"time"

	"github.com/thdelmas/PPP-Price-Converter/internal/domain"
)

// StaticBase is the base currency of the built-in rate table.
const StaticBase = "USD"

// staticRates are approximate USD-based rates used when no rates were ever fetched.
var staticRates = map[string]float64{
	"USD": 1,
	"AED": 3.6725, "AFN": 70.5, "ALL": 92.8, "AMD": 387.5, "AOA": 912.0, "ARS": 970.0,
	"AUD": 1.52, "AZN": 1.70, "BAM": 1.80, "BBD": 2.0, "BDT": 119.5, "BGN": 1.80,
	"BHD": 0.376, "BIF": 2890.0, "BND": 1.34, "BOB": 6.91, "BRL": 5.45, "BSD": 1.0,
	"BTN": 83.9, "BWP": 13.5, "BYN": 3.27, "BZD": 2.0, "CAD": 1.37, "CDF": 2850.0,
	"CHF": 0.88, "CLP": 940.0, "CNY": 7.22, "COP": 4050.0, "CRC": 520.0, "CVE": 101.5,
	"CZK": 23.2, "DJF": 177.7, "DKK": 6.87, "DOP": 60.0, "DZD": 134.5, "EGP": 48.5,
	"ETB": 57.5, "EUR": 0.92, "FJD": 2.24, "GBP": 0.79, "GEL": 2.70, "GHS": 15.5,
	"GMD": 68.0, "GNF": 8600.0, "GTQ": 7.76, "GYD": 209.0, "HKD": 7.81, "HNL": 24.8,
	"HTG": 132.0, "HUF": 365.0, "IDR": 16200.0, "ILS": 3.72, "INR": 83.9, "IQD": 1310.0,
	"IRR": 42000.0, "ISK": 138.0, "JMD": 157.0, "JOD": 0.709, "JPY": 150.0, "KES": 129.0,
	"KGS": 85.5, "KHR": 4100.0, "KMF": 452.0, "KRW": 1360.0, "KWD": 0.306, "KZT": 480.0,
	"LAK": 22000.0, "LBP": 89500.0, "LKR": 300.0, "LRD": 194.0, "LSL": 18.2, "MAD": 9.85,
	"MDL": 17.6, "MGA": 4550.0, "MKD": 56.6, "MMK": 2100.0, "MNT": 3400.0, "MOP": 8.05,
	"MRU": 39.8, "MUR": 46.5, "MVR": 15.4, "MWK": 1735.0, "MXN": 19.5, "MYR": 4.40,
	"MZN": 63.9, "NAD": 18.2, "NGN": 1600.0, "NIO": 36.8, "NOK": 10.8, "NPR": 134.2,
	"NZD": 1.65, "OMR": 0.385, "PAB": 1.0, "PEN": 3.75, "PGK": 3.93, "PHP": 57.0,
	"PKR": 278.0, "PLN": 3.95, "PYG": 7600.0, "QAR": 3.64, "RON": 4.58, "RSD": 108.0,
	"RUB": 92.0, "RWF": 1340.0, "SAR": 3.75, "SBD": 8.45, "SCR": 13.6, "SDG": 600.0,
	"SEK": 10.6, "SGD": 1.34, "SLE": 22.5, "SOS": 571.0, "SRD": 29.0, "SSP": 1300.0,
	"STN": 22.6, "SZL": 18.2, "THB": 35.5, "TJS": 10.7, "TND": 3.10, "TOP": 2.35,
	"TRY": 34.0, "TTD": 6.78, "TWD": 32.2, "TZS": 2700.0, "UAH": 41.2, "UGX": 3720.0,
	"UYU": 40.5, "UZS": 12650.0, "VND": 25400.0, "VUV": 119.0, "WST": 2.74, "XAF": 603.0,
	"XCD": 2.70, "XOF": 603.0, "YER": 250.0, "ZAR": 18.2, "ZMW": 26.5, "ZWL": 13.8,
}

// StaticSnapshot returns the built-in rate table labelled as static fallback.
func StaticSnapshot(now time.Time) domain.ExchangeRateSnapshot {
	return domain.ExchangeRateSnapshot{
		Base:        StaticBase,
		Rates:       maps.Clone(staticRates),
		Timestamp:   now,
		LastUpdated: domain.StaticFallbackLabel,
	}
}
