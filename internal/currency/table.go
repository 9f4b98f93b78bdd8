package currency

// entry is one row of the reference table.
type entry struct {
	Code     string // ISO 3166-1 alpha-3
	Alpha2   string
	Currency string // ISO 4217
	Region   string
}

// Regions.
const (
	RegionAfrica   = "Africa"
	RegionAmericas = "Americas"
	RegionAsia     = "Asia"
	RegionEurope   = "Europe"
	RegionMidEast  = "Middle East"
	RegionOceania  = "Oceania"
)

// countries is ordered: the reverse currency mapping is first-wins over this order.
var countries = []entry{
	{"USA", "US", "USD", RegionAmericas},
	{"GBR", "GB", "GBP", RegionEurope},
	{"JPN", "JP", "JPY", RegionAsia},
	{"CHN", "CN", "CNY", RegionAsia},
	{"IND", "IN", "INR", RegionAsia},
	{"CAN", "CA", "CAD", RegionAmericas},
	{"AUS", "AU", "AUD", RegionOceania},
	{"CHE", "CH", "CHF", RegionEurope},
	{"BRA", "BR", "BRL", RegionAmericas},
	{"MEX", "MX", "MXN", RegionAmericas},
	{"KOR", "KR", "KRW", RegionAsia},
	{"RUS", "RU", "RUB", RegionEurope},
	{"ZAF", "ZA", "ZAR", RegionAfrica},

	// Euro area
	{"AUT", "AT", "EUR", RegionEurope},
	{"BEL", "BE", "EUR", RegionEurope},
	{"HRV", "HR", "EUR", RegionEurope},
	{"CYP", "CY", "EUR", RegionEurope},
	{"EST", "EE", "EUR", RegionEurope},
	{"FIN", "FI", "EUR", RegionEurope},
	{"FRA", "FR", "EUR", RegionEurope},
	{"DEU", "DE", "EUR", RegionEurope},
	{"GRC", "GR", "EUR", RegionEurope},
	{"IRL", "IE", "EUR", RegionEurope},
	{"ITA", "IT", "EUR", RegionEurope},
	{"LVA", "LV", "EUR", RegionEurope},
	{"LTU", "LT", "EUR", RegionEurope},
	{"LUX", "LU", "EUR", RegionEurope},
	{"MLT", "MT", "EUR", RegionEurope},
	{"NLD", "NL", "EUR", RegionEurope},
	{"PRT", "PT", "EUR", RegionEurope},
	{"SVK", "SK", "EUR", RegionEurope},
	{"SVN", "SI", "EUR", RegionEurope},
	{"ESP", "ES", "EUR", RegionEurope},
	{"AND", "AD", "EUR", RegionEurope},
	{"MCO", "MC", "EUR", RegionEurope},
	{"SMR", "SM", "EUR", RegionEurope},
	{"MNE", "ME", "EUR", RegionEurope},
	{"XKX", "XK", "EUR", RegionEurope},

	// Rest of Europe
	{"ALB", "AL", "ALL", RegionEurope},
	{"ARM", "AM", "AMD", RegionEurope},
	{"AZE", "AZ", "AZN", RegionEurope},
	{"BLR", "BY", "BYN", RegionEurope},
	{"BIH", "BA", "BAM", RegionEurope},
	{"BGR", "BG", "BGN", RegionEurope},
	{"CZE", "CZ", "CZK", RegionEurope},
	{"DNK", "DK", "DKK", RegionEurope},
	{"GEO", "GE", "GEL", RegionEurope},
	{"HUN", "HU", "HUF", RegionEurope},
	{"ISL", "IS", "ISK", RegionEurope},
	{"MDA", "MD", "MDL", RegionEurope},
	{"MKD", "MK", "MKD", RegionEurope},
	{"NOR", "NO", "NOK", RegionEurope},
	{"POL", "PL", "PLN", RegionEurope},
	{"ROU", "RO", "RON", RegionEurope},
	{"SRB", "RS", "RSD", RegionEurope},
	{"SWE", "SE", "SEK", RegionEurope},
	{"TUR", "TR", "TRY", RegionEurope},
	{"UKR", "UA", "UAH", RegionEurope},

	// Americas
	{"ARG", "AR", "ARS", RegionAmericas},
	{"ATG", "AG", "XCD", RegionAmericas},
	{"BHS", "BS", "BSD", RegionAmericas},
	{"BRB", "BB", "BBD", RegionAmericas},
	{"BLZ", "BZ", "BZD", RegionAmericas},
	{"BOL", "BO", "BOB", RegionAmericas},
	{"CHL", "CL", "CLP", RegionAmericas},
	{"COL", "CO", "COP", RegionAmericas},
	{"CRI", "CR", "CRC", RegionAmericas},
	{"DMA", "DM", "XCD", RegionAmericas},
	{"DOM", "DO", "DOP", RegionAmericas},
	{"ECU", "EC", "USD", RegionAmericas},
	{"SLV", "SV", "USD", RegionAmericas},
	{"GRD", "GD", "XCD", RegionAmericas},
	{"GTM", "GT", "GTQ", RegionAmericas},
	{"GUY", "GY", "GYD", RegionAmericas},
	{"HTI", "HT", "HTG", RegionAmericas},
	{"HND", "HN", "HNL", RegionAmericas},
	{"JAM", "JM", "JMD", RegionAmericas},
	{"KNA", "KN", "XCD", RegionAmericas},
	{"LCA", "LC", "XCD", RegionAmericas},
	{"NIC", "NI", "NIO", RegionAmericas},
	{"PAN", "PA", "PAB", RegionAmericas},
	{"PRY", "PY", "PYG", RegionAmericas},
	{"PER", "PE", "PEN", RegionAmericas},
	{"PRI", "PR", "USD", RegionAmericas},
	{"SUR", "SR", "SRD", RegionAmericas},
	{"TTO", "TT", "TTD", RegionAmericas},
	{"URY", "UY", "UYU", RegionAmericas},
	{"VCT", "VC", "XCD", RegionAmericas},

	// Asia
	{"AFG", "AF", "AFN", RegionAsia},
	{"BGD", "BD", "BDT", RegionAsia},
	{"BTN", "BT", "BTN", RegionAsia},
	{"BRN", "BN", "BND", RegionAsia},
	{"KHM", "KH", "KHR", RegionAsia},
	{"HKG", "HK", "HKD", RegionAsia},
	{"IDN", "ID", "IDR", RegionAsia},
	{"KAZ", "KZ", "KZT", RegionAsia},
	{"KGZ", "KG", "KGS", RegionAsia},
	{"LAO", "LA", "LAK", RegionAsia},
	{"MAC", "MO", "MOP", RegionAsia},
	{"MYS", "MY", "MYR", RegionAsia},
	{"MDV", "MV", "MVR", RegionAsia},
	{"MNG", "MN", "MNT", RegionAsia},
	{"MMR", "MM", "MMK", RegionAsia},
	{"NPL", "NP", "NPR", RegionAsia},
	{"PAK", "PK", "PKR", RegionAsia},
	{"PHL", "PH", "PHP", RegionAsia},
	{"SGP", "SG", "SGD", RegionAsia},
	{"LKA", "LK", "LKR", RegionAsia},
	{"TWN", "TW", "TWD", RegionAsia},
	{"TJK", "TJ", "TJS", RegionAsia},
	{"THA", "TH", "THB", RegionAsia},
	{"TLS", "TL", "USD", RegionAsia},
	{"UZB", "UZ", "UZS", RegionAsia},
	{"VNM", "VN", "VND", RegionAsia},

	// Middle East
	{"BHR", "BH", "BHD", RegionMidEast},
	{"IRN", "IR", "IRR", RegionMidEast},
	{"IRQ", "IQ", "IQD", RegionMidEast},
	{"ISR", "IL", "ILS", RegionMidEast},
	{"JOR", "JO", "JOD", RegionMidEast},
	{"KWT", "KW", "KWD", RegionMidEast},
	{"LBN", "LB", "LBP", RegionMidEast},
	{"OMN", "OM", "OMR", RegionMidEast},
	{"QAT", "QA", "QAR", RegionMidEast},
	{"SAU", "SA", "SAR", RegionMidEast},
	{"ARE", "AE", "AED", RegionMidEast},
	{"YEM", "YE", "YER", RegionMidEast},

	// Africa
	{"DZA", "DZ", "DZD", RegionAfrica},
	{"AGO", "AO", "AOA", RegionAfrica},
	{"BEN", "BJ", "XOF", RegionAfrica},
	{"BWA", "BW", "BWP", RegionAfrica},
	{"BFA", "BF", "XOF", RegionAfrica},
	{"BDI", "BI", "BIF", RegionAfrica},
	{"CPV", "CV", "CVE", RegionAfrica},
	{"CMR", "CM", "XAF", RegionAfrica},
	{"CAF", "CF", "XAF", RegionAfrica},
	{"TCD", "TD", "XAF", RegionAfrica},
	{"COM", "KM", "KMF", RegionAfrica},
	{"COD", "CD", "CDF", RegionAfrica},
	{"COG", "CG", "XAF", RegionAfrica},
	{"CIV", "CI", "XOF", RegionAfrica},
	{"DJI", "DJ", "DJF", RegionAfrica},
	{"EGY", "EG", "EGP", RegionAfrica},
	{"GNQ", "GQ", "XAF", RegionAfrica},
	{"ETH", "ET", "ETB", RegionAfrica},
	{"GAB", "GA", "XAF", RegionAfrica},
	{"GMB", "GM", "GMD", RegionAfrica},
	{"GHA", "GH", "GHS", RegionAfrica},
	{"GIN", "GN", "GNF", RegionAfrica},
	{"GNB", "GW", "XOF", RegionAfrica},
	{"KEN", "KE", "KES", RegionAfrica},
	{"LSO", "LS", "LSL", RegionAfrica},
	{"LBR", "LR", "LRD", RegionAfrica},
	{"MDG", "MG", "MGA", RegionAfrica},
	{"MWI", "MW", "MWK", RegionAfrica},
	{"MLI", "ML", "XOF", RegionAfrica},
	{"MRT", "MR", "MRU", RegionAfrica},
	{"MUS", "MU", "MUR", RegionAfrica},
	{"MAR", "MA", "MAD", RegionAfrica},
	{"MOZ", "MZ", "MZN", RegionAfrica},
	{"NAM", "NA", "NAD", RegionAfrica},
	{"NER", "NE", "XOF", RegionAfrica},
	{"NGA", "NG", "NGN", RegionAfrica},
	{"RWA", "RW", "RWF", RegionAfrica},
	{"STP", "ST", "STN", RegionAfrica},
	{"SEN", "SN", "XOF", RegionAfrica},
	{"SYC", "SC", "SCR", RegionAfrica},
	{"SLE", "SL", "SLE", RegionAfrica},
	{"SOM", "SO", "SOS", RegionAfrica},
	{"SSD", "SS", "SSP", RegionAfrica},
	{"SDN", "SD", "SDG", RegionAfrica},
	{"SWZ", "SZ", "SZL", RegionAfrica},
	{"TZA", "TZ", "TZS", RegionAfrica},
	{"TGO", "TG", "XOF", RegionAfrica},
	{"TUN", "TN", "TND", RegionAfrica},
	{"UGA", "UG", "UGX", RegionAfrica},
	{"ZMB", "ZM", "ZMW", RegionAfrica},
	{"ZWE", "ZW", "ZWL", RegionAfrica},

	// Oceania
	{"FJI", "FJ", "FJD", RegionOceania},
	{"KIR", "KI", "AUD", RegionOceania},
	{"MHL", "MH", "USD", RegionOceania},
	{"FSM", "FM", "USD", RegionOceania},
	{"NZL", "NZ", "NZD", RegionOceania},
	{"PLW", "PW", "USD", RegionOceania},
	{"PNG", "PG", "PGK", RegionOceania},
	{"WSM", "WS", "WST", RegionOceania},
	{"SLB", "SB", "SBD", RegionOceania},
	{"TON", "TO", "TOP", RegionOceania},
	{"TUV", "TV", "AUD", RegionOceania},
	{"VUT", "VU", "VUV", RegionOceania},
}

var currencyNames = map[string]string{
	"AED": "UAE Dirham", "AFN": "Afghan Afghani", "ALL": "Albanian Lek", "AMD": "Armenian Dram",
	"AOA": "Angolan Kwanza", "ARS": "Argentine Peso", "AUD": "Australian Dollar", "AZN": "Azerbaijani Manat",
	"BAM": "Convertible Mark", "BBD": "Barbadian Dollar", "BDT": "Bangladeshi Taka", "BGN": "Bulgarian Lev",
	"BHD": "Bahraini Dinar", "BIF": "Burundian Franc", "BND": "Brunei Dollar", "BOB": "Bolivian Boliviano",
	"BRL": "Brazilian Real", "BSD": "Bahamian Dollar", "BTN": "Bhutanese Ngultrum", "BWP": "Botswana Pula",
	"BYN": "Belarusian Ruble", "BZD": "Belize Dollar", "CAD": "Canadian Dollar", "CDF": "Congolese Franc",
	"CHF": "Swiss Franc", "CLP": "Chilean Peso", "CNY": "Chinese Yuan", "COP": "Colombian Peso",
	"CRC": "Costa Rican Colón", "CVE": "Cape Verdean Escudo", "CZK": "Czech Koruna", "DJF": "Djiboutian Franc",
	"DKK": "Danish Krone", "DOP": "Dominican Peso", "DZD": "Algerian Dinar", "EGP": "Egyptian Pound",
	"ETB": "Ethiopian Birr", "EUR": "Euro", "FJD": "Fijian Dollar", "GBP": "British Pound",
	"GEL": "Georgian Lari", "GHS": "Ghanaian Cedi", "GMD": "Gambian Dalasi", "GNF": "Guinean Franc",
	"GTQ": "Guatemalan Quetzal", "GYD": "Guyanese Dollar", "HKD": "Hong Kong Dollar", "HNL": "Honduran Lempira",
	"HTG": "Haitian Gourde", "HUF": "Hungarian Forint", "IDR": "Indonesian Rupiah", "ILS": "Israeli New Shekel",
	"INR": "Indian Rupee", "IQD": "Iraqi Dinar", "IRR": "Iranian Rial", "ISK": "Icelandic Króna",
	"JMD": "Jamaican Dollar", "JOD": "Jordanian Dinar", "JPY": "Japanese Yen", "KES": "Kenyan Shilling",
	"KGS": "Kyrgyzstani Som", "KHR": "Cambodian Riel", "KMF": "Comorian Franc", "KRW": "South Korean Won",
	"KWD": "Kuwaiti Dinar", "KZT": "Kazakhstani Tenge", "LAK": "Lao Kip", "LBP": "Lebanese Pound",
	"LKR": "Sri Lankan Rupee", "LRD": "Liberian Dollar", "LSL": "Lesotho Loti", "MAD": "Moroccan Dirham",
	"MDL": "Moldovan Leu", "MGA": "Malagasy Ariary", "MKD": "Macedonian Denar", "MMK": "Myanmar Kyat",
	"MNT": "Mongolian Tögrög", "MOP": "Macanese Pataca", "MRU": "Mauritanian Ouguiya", "MUR": "Mauritian Rupee",
	"MVR": "Maldivian Rufiyaa", "MWK": "Malawian Kwacha", "MXN": "Mexican Peso", "MYR": "Malaysian Ringgit",
	"MZN": "Mozambican Metical", "NAD": "Namibian Dollar", "NGN": "Nigerian Naira", "NIO": "Nicaraguan Córdoba",
	"NOK": "Norwegian Krone", "NPR": "Nepalese Rupee", "NZD": "New Zealand Dollar", "OMR": "Omani Rial",
	"PAB": "Panamanian Balboa", "PEN": "Peruvian Sol", "PGK": "Papua New Guinean Kina", "PHP": "Philippine Peso",
	"PKR": "Pakistani Rupee", "PLN": "Polish Złoty", "PYG": "Paraguayan Guaraní", "QAR": "Qatari Riyal",
	"RON": "Romanian Leu", "RSD": "Serbian Dinar", "RUB": "Russian Ruble", "RWF": "Rwandan Franc",
	"SAR": "Saudi Riyal", "SBD": "Solomon Islands Dollar", "SCR": "Seychellois Rupee", "SDG": "Sudanese Pound",
	"SEK": "Swedish Krona", "SGD": "Singapore Dollar", "SLE": "Sierra Leonean Leone", "SOS": "Somali Shilling",
	"SRD": "Surinamese Dollar", "SSP": "South Sudanese Pound", "STN": "São Tomé and Príncipe Dobra", "SZL": "Swazi Lilangeni",
	"THB": "Thai Baht", "TJS": "Tajikistani Somoni", "TND": "Tunisian Dinar", "TOP": "Tongan Paʻanga",
	"TRY": "Turkish Lira", "TTD": "Trinidad and Tobago Dollar", "TWD": "New Taiwan Dollar", "TZS": "Tanzanian Shilling",
	"UAH": "Ukrainian Hryvnia", "UGX": "Ugandan Shilling", "USD": "US Dollar", "UYU": "Uruguayan Peso",
	"UZS": "Uzbekistani Som", "VND": "Vietnamese Đồng", "VUV": "Vanuatu Vatu", "WST": "Samoan Tālā",
	"XAF": "Central African CFA Franc", "XCD": "East Caribbean Dollar", "XOF": "West African CFA Franc", "YER": "Yemeni Rial",
	"ZAR": "South African Rand", "ZMW": "Zambian Kwacha", "ZWL": "Zimbabwean Dollar",
}
