package extract

// DefaultCities is the fixed list of major US cities matched by the
// city-mentions sub-extractor when no list is configured. Names must be
// unambiguous enough for word-boundary matching against free text.
var DefaultCities = []string{
	"New York",
	"Los Angeles",
	"Chicago",
	"Houston",
	"Phoenix",
	"Philadelphia",
	"San Antonio",
	"San Diego",
	"Dallas",
	"San Jose",
	"Austin",
	"Jacksonville",
	"Fort Worth",
	"Columbus",
	"Charlotte",
	"San Francisco",
	"Indianapolis",
	"Seattle",
	"Denver",
	"Nashville",
	"Oklahoma City",
	"El Paso",
	"Boston",
	"Portland",
	"Las Vegas",
	"Detroit",
	"Memphis",
	"Louisville",
	"Baltimore",
	"Milwaukee",
	"Albuquerque",
	"Tucson",
	"Fresno",
	"Sacramento",
	"Kansas City",
	"Mesa",
	"Atlanta",
	"Omaha",
	"Colorado Springs",
	"Raleigh",
	"Virginia Beach",
	"Long Beach",
	"Miami",
	"Oakland",
	"Minneapolis",
	"Tulsa",
	"Bakersfield",
	"Tampa",
	"Wichita",
	"Arlington",
	"Aurora",
	"New Orleans",
	"Cleveland",
	"Honolulu",
	"Anaheim",
	"Henderson",
	"Orlando",
	"Lexington",
	"Stockton",
	"Riverside",
	"Corpus Christi",
	"Irvine",
	"Cincinnati",
	"Santa Ana",
	"Newark",
	"Saint Paul",
	"Pittsburgh",
	"Greensboro",
	"Durham",
	"Lincoln",
	"Jersey City",
	"Plano",
	"Anchorage",
	"Chandler",
	"Chula Vista",
	"Buffalo",
	"Gilbert",
	"Madison",
	"Reno",
	"Toledo",
	"Fort Wayne",
	"Lubbock",
	"St. Petersburg",
	"Laredo",
	"Irving",
	"Chesapeake",
	"Winston-Salem",
	"Glendale",
	"Scottsdale",
	"Garland",
	"Boise",
	"Norfolk",
	"Spokane",
	"Fremont",
	"Richmond",
	"Santa Clarita",
	"San Bernardino",
	"Baton Rouge",
	"Hialeah",
	"Tacoma",
	"Modesto",
	"Port St. Lucie",
	"Huntsville",
	"Des Moines",
	"Moreno Valley",
	"Fontana",
	"Frisco",
	"Rochester",
	"Yonkers",
	"Fayetteville",
	"Worcester",
	"Columbia",
	"Cape Coral",
	"McKinney",
	"Little Rock",
	"Oxnard",
	"Amarillo",
	"Augusta",
	"Salt Lake City",
	"Montgomery",
	"Birmingham",
	"Grand Rapids",
	"Grand Prairie",
	"Knoxville",
	"Overland Park",
	"Tallahassee",
	"Cary",
	"Providence",
	"Brownsville",
	"Tempe",
	"Akron",
	"Chattanooga",
	"Fort Lauderdale",
	"Springfield",
	"Shreveport",
	"Mobile",
	"Newport News",
	"Sioux Falls",
	"Ontario",
	"Eugene",
	"Salem",
	"Peoria",
	"Rockford",
	"Boulder",
	"Asheville",
	"Bozeman",
	"Spokane Valley",
}
