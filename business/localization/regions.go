package localization

import "dabbaMarket/domain"

const defaultRegionKey = "maharashtra"

// regions is the static regional content table: language, festivals, and
// local specialties per supported region.
var regions = map[string]domain.Region{
	"maharashtra": {
		Key:      "maharashtra",
		Language: "mr",
		Capital:  "mumbai",
		Festivals: []domain.Festival{
			{Name: "Ganesh Chaturthi", Month: 8, DurationDays: 10},
			{Name: "Gudi Padwa", Month: 3, DurationDays: 1},
			{Name: "Diwali", Month: 10, DurationDays: 5},
		},
		LocalDishes: []string{
			"Vada Pav", "Pav Bhaji", "Misal Pav", "Puran Poli",
			"Modak", "Sabudana Khichdi", "Bombil Fry",
		},
		FamousAreas: []string{"Mumbai", "Pune", "Nagpur", "Nashik", "Kolhapur"},
	},
	"tamilnadu": {
		Key:      "tamilnadu",
		Language: "ta",
		Capital:  "chennai",
		Festivals: []domain.Festival{
			{Name: "Pongal", Month: 1, DurationDays: 4},
			{Name: "Tamil New Year", Month: 4, DurationDays: 1},
			{Name: "Diwali", Month: 10, DurationDays: 1},
		},
		LocalDishes: []string{
			"Idli", "Dosa", "Sambar", "Vada", "Pongal",
			"Chettinad Chicken", "Filter Coffee", "Kothu Parotta",
		},
		FamousAreas: []string{"Chennai", "Coimbatore", "Madurai", "Trichy", "Salem"},
	},
	"andhrapradesh": {
		Key:      "andhrapradesh",
		Language: "te",
		Capital:  "amaravati",
		Festivals: []domain.Festival{
			{Name: "Ugadi", Month: 3, DurationDays: 1},
			{Name: "Sankranthi", Month: 1, DurationDays: 3},
			{Name: "Diwali", Month: 10, DurationDays: 1},
		},
		LocalDishes: []string{
			"Hyderabadi Biryani", "Gongura Pickle", "Pesarattu",
			"Pulihora", "Gutti Vankaya", "Bobbatlu",
		},
		FamousAreas: []string{"Hyderabad", "Visakhapatnam", "Vijayawada", "Tirupati"},
	},
	"karnataka": {
		Key:      "karnataka",
		Language: "kn",
		Capital:  "bangalore",
		Festivals: []domain.Festival{
			{Name: "Ugadi", Month: 3, DurationDays: 1},
			{Name: "Karaga", Month: 4, DurationDays: 1},
			{Name: "Diwali", Month: 10, DurationDays: 1},
		},
		LocalDishes: []string{
			"Bisi Bele Bath", "Mysore Pak", "Dosa", "Idli",
			"Neer Dosa", "Kori Rotti", "Mangalore Bajji",
		},
		FamousAreas: []string{"Bangalore", "Mysore", "Hubli", "Mangalore", "Belgaum"},
	},
	"kerala": {
		Key:      "kerala",
		Language: "ml",
		Capital:  "thiruvananthapuram",
		Festivals: []domain.Festival{
			{Name: "Onam", Month: 8, DurationDays: 10},
			{Name: "Vishu", Month: 4, DurationDays: 1},
			{Name: "Christmas", Month: 12, DurationDays: 1},
		},
		LocalDishes: []string{
			"Appam with Stew", "Puttu and Kadala Curry", "Sadya",
			"Malabar Biryani", "Karimeen Pollichathu", "Payasam",
		},
		FamousAreas: []string{"Thiruvananthapuram", "Kochi", "Kozhikode", "Thrissur"},
	},
	"westbengal": {
		Key:      "westbengal",
		Language: "bn",
		Capital:  "kolkata",
		Festivals: []domain.Festival{
			{Name: "Durga Puja", Month: 10, DurationDays: 5},
			{Name: "Kali Puja", Month: 10, DurationDays: 1},
			{Name: "Poila Boishakh", Month: 4, DurationDays: 1},
		},
		LocalDishes: []string{
			"Macher Jhol", "Shorshe Ilish", "Chingri Malai Curry",
			"Aloo Posto", "Roshogolla", "Sandesh", "Mishti Doi",
		},
		FamousAreas: []string{"Kolkata", "Howrah", "Durgapur", "Siliguri"},
	},
	"gujarat": {
		Key:      "gujarat",
		Language: "gu",
		Capital:  "gandhinagar",
		Festivals: []domain.Festival{
			{Name: "Navratri", Month: 10, DurationDays: 9},
			{Name: "Diwali", Month: 10, DurationDays: 5},
			{Name: "Uttarayan", Month: 1, DurationDays: 1},
		},
		LocalDishes: []string{
			"Dhokla", "Khandvi", "Thepla", "Undhiyu",
			"Fafda-Jalebi", "Handvo", "Mohanthal",
		},
		FamousAreas: []string{"Ahmedabad", "Surat", "Vadodara", "Rajkot"},
	},
	"punjab": {
		Key:      "punjab",
		Language: "pa",
		Capital:  "chandigarh",
		Festivals: []domain.Festival{
			{Name: "Lohri", Month: 1, DurationDays: 1},
			{Name: "Baisakhi", Month: 4, DurationDays: 1},
			{Name: "Gurpurab", Month: 11, DurationDays: 1},
		},
		LocalDishes: []string{
			"Butter Chicken", "Sarson ka Saag", "Makki di Roti",
			"Chole Bhature", "Amritsari Fish", "Lassi",
		},
		FamousAreas: []string{"Amritsar", "Ludhiana", "Jalandhar", "Patiala"},
	},
}

// cityToRegion maps a lower-case city to its region key. Cities without a
// region entry resolve to the default region.
var cityToRegion = map[string]string{
	"mumbai": "maharashtra", "pune": "maharashtra", "nagpur": "maharashtra",
	"chennai": "tamilnadu", "coimbatore": "tamilnadu", "madurai": "tamilnadu",
	"hyderabad": "andhrapradesh", "visakhapatnam": "andhrapradesh",
	"bangalore": "karnataka", "mysore": "karnataka", "mangalore": "karnataka",
	"kochi": "kerala", "thiruvananthapuram": "kerala", "kozhikode": "kerala",
	"kolkata": "westbengal", "howrah": "westbengal", "siliguri": "westbengal",
	"ahmedabad": "gujarat", "surat": "gujarat", "vadodara": "gujarat",
	"amritsar": "punjab", "ludhiana": "punjab", "chandigarh": "punjab",
}

// timeBasedDishes is the time-of-day suggestion table used by the local
// recommendations path.
var timeBasedDishes = map[string][]string{
	"breakfast": {"Idli", "Dosa", "Poha", "Upma", "Paratha"},
	"lunch":     {"Thali", "Biryani", "Curry Rice", "Dal Rice"},
	"dinner":    {"Thali", "Roti Sabzi", "Biryani", "Fried Rice"},
	"snack":     {"Samosa", "Vada Pav", "Pani Puri", "Bhel Puri"},
}
