package localization

// Translation keys used by the API layer.
const (
	KeyWelcome         = "welcome"
	KeyRegionalSpecial = "regional_special"
	KeyRecommendations = "recommendations"
)

// supportedLanguages lists the 13 supported language codes. Languages
// without a translation table fall back to English per key.
var supportedLanguages = []string{
	"en", "hi", "mr", "ta", "te", "kn", "ml", "bn", "gu", "pa", "or", "as", "ur",
}

var languageNames = map[string]string{
	"en": "English",
	"hi": "हिन्दी",
	"mr": "मराठी",
	"ta": "தமிழ்",
	"te": "తెలుగు",
	"kn": "ಕನ್ನಡ",
	"ml": "മലയാളം",
	"bn": "বাংলা",
	"gu": "ગુજરાતી",
	"pa": "ਪੰਜਾਬੀ",
	"or": "ଓଡ଼ିଆ",
	"as": "অসমীয়া",
	"ur": "اردو",
}

var translations = map[string]map[string]string{
	"en": {
		"welcome":          "Welcome to Dabba's",
		"login":            "Login",
		"signup":           "Sign Up",
		"home":             "Home",
		"menu":             "Menu",
		"orders":           "Orders",
		"profile":          "Profile",
		"subscriptions":    "Subscriptions",
		"payments":         "Payments",
		"complaints":       "Complaints",
		"breakfast":        "Breakfast",
		"lunch":            "Lunch",
		"dinner":           "Dinner",
		"snacks":           "Snacks",
		"add_to_cart":      "Add to Cart",
		"checkout":         "Checkout",
		"total":            "Total",
		"recommendations":  "Recommendations",
		"regional_special": "Special from {region}",
	},
	"hi": {
		"welcome":          "डब्बा में आपका स्वागत है",
		"login":            "लॉग इन",
		"signup":           "साइन अप",
		"home":             "होम",
		"menu":             "मेनू",
		"orders":           "ऑर्डर",
		"profile":          "प्रोफाइल",
		"subscriptions":    "सदस्यता",
		"payments":         "भुगतान",
		"complaints":       "शिकायत",
		"breakfast":        "नाश्ता",
		"lunch":            "दोपहर का भोजन",
		"dinner":           "रात का खाना",
		"snacks":           "नाश्ता",
		"add_to_cart":      "कार्ट में डालें",
		"checkout":         "चेकआउट",
		"total":            "कुल",
		"recommendations":  "सिफारिशें",
		"regional_special": "{region} से विशेष",
	},
	"mr": {
		"welcome":          "डब्बामध्ये आपले स्वागत आहे",
		"login":            "लॉगिन",
		"signup":           "साइन अप",
		"home":             "मुख्यपृष्ठ",
		"menu":             "मेनू",
		"orders":           "ऑर्डर",
		"profile":          "प्रोफाइल",
		"subscriptions":    "सदस्यता",
		"payments":         "पेमेंट",
		"complaints":       "तक्रारी",
		"breakfast":        "नाश्ता",
		"lunch":            "दुपारचे जेवण",
		"dinner":           "रात्रीचे जेवण",
		"snacks":           "स्नॅक्स",
		"add_to_cart":      "कार्टमध्ये घाला",
		"checkout":         "चेकआउट",
		"total":            "एकूण",
		"recommendations":  "शिफारसी",
		"regional_special": "{region} मधील विशेष",
	},
	"ta": {
		"welcome":          "டப்பாவிற்கு வரவேற்கிறோம்",
		"login":            "உள்நுழைய",
		"signup":           "பதிவு செய்க",
		"home":             "முகப்பு",
		"menu":             "மெனு",
		"orders":           "ஆர்டர்கள்",
		"profile":          "சுயவிவரம்",
		"subscriptions":    "சந்தாக்கள்",
		"payments":         "கட்டணங்கள்",
		"complaints":       "புகார்கள்",
		"breakfast":        "காலை உணவு",
		"lunch":            "மதிய உணவு",
		"dinner":           "இரவு உணவு",
		"snacks":           "சிற்றுண்டி",
		"add_to_cart":      "வண்டியில் சேர்க்கவும்",
		"checkout":         "செலுத்தவும்",
		"total":            "மொத்தம்",
		"recommendations":  "பரிந்துரைகள்",
		"regional_special": "{region} இலிருந்து சிறப்பு",
	},
	"te": {
		"welcome":          "డబ్బాకు స్వాగతం",
		"login":            "లాగిన్",
		"signup":           "సైన్ అప్",
		"home":             "హోమ్",
		"menu":             "మెనూ",
		"orders":           "ఆర్డర్లు",
		"profile":          "ప్రొఫైల్",
		"subscriptions":    "సభ్యత్వాలు",
		"payments":         "చెల్లింపులు",
		"complaints":       "ఫిర్యాదులు",
		"breakfast":        "అల్పాహారం",
		"lunch":            "మధ్యాహ్న భోజనం",
		"dinner":           "రాత్రి భోజనం",
		"snacks":           "చిరుతిండి",
		"add_to_cart":      "కార్ట్‌లో చేర్చండి",
		"checkout":         "చెక్అవుట్",
		"total":            "మొత్తం",
		"recommendations":  "సిఫార్సులు",
		"regional_special": "{region} నుండి ప్రత్యేక",
	},
	"kn": {
		"welcome":          "ಡಬ್ಬಾಗೆ ಸ್ವಾಗತ",
		"login":            "ಲಾಗಿನ್",
		"signup":           "ಸೈನ್ ಅಪ್",
		"home":             "ಮುಖಪುಟ",
		"menu":             "ಮೆನು",
		"orders":           "ಆರ್ಡರ್‌ಗಳು",
		"profile":          "ಪ್ರೊಫೈಲ್",
		"subscriptions":    "ಚಂದಾದಾರಿಕೆಗಳು",
		"payments":         "ಪಾವತಿಗಳು",
		"complaints":       "ದೂರುಗಳು",
		"breakfast":        "ತಿಂಡಿ",
		"lunch":            "ಮಧ್ಯಾಹ್ನದ ಊಟ",
		"dinner":           "ರಾತ್ರಿ ಊಟ",
		"snacks":           "ಉಪಹಾರ",
		"add_to_cart":      "ಕಾರ್ಟ್‌ಗೆ ಸೇರಿಸಿ",
		"checkout":         "ಚೆಕ್‌ಔಟ್",
		"total":            "ಒಟ್ಟು",
		"recommendations":  "ಶಿಫಾರಸುಗಳು",
		"regional_special": "{region} ನಿಂದ ವಿಶೇಷ",
	},
	"ml": {
		"welcome":          "ഡബ്ബയിലേക്ക് സ്വാഗതം",
		"login":            "ലോഗിൻ",
		"signup":           "സൈൻ അപ്പ്",
		"home":             "ഹോം",
		"menu":             "മെനു",
		"orders":           "ഓർഡറുകൾ",
		"profile":          "പ്രൊഫൈൽ",
		"subscriptions":    "സബ്‌സ്ക്രിപ്‌ഷനുകൾ",
		"payments":         "പേയ്‌മെന്റുകൾ",
		"complaints":       "പരാതികൾ",
		"breakfast":        "പ്രഭാത ഭക്ഷണം",
		"lunch":            "ഉച്ചഭക്ഷണം",
		"dinner":           "രാത്രി ഭക്ഷണം",
		"snacks":           "ലഘുഭക്ഷണം",
		"add_to_cart":      "കാർട്ടിലേക്ക് ചേർക്കുക",
		"checkout":         "ചെക്ക്‌ഔട്ട്",
		"total":            "ആകെ",
		"recommendations":  "ശുപാർശകൾ",
		"regional_special": "{region} ൽ നിന്നുള്ള പ്രത്യേകത",
	},
}
