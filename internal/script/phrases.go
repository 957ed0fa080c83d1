package script

import "github.com/azyu/scriptweaver/pkg/types"

// archetype is a dramatic function an act can serve.
type archetype int

const (
	archSetup archetype = iota
	archRising
	archMidpoint
	archClimax
	archResolution

	archetypeCount = 5
)

// Headings are the section titles shared by every rendering of a document.
type Headings struct {
	Summary   string
	Structure string
	Scenes    string
	FinalNote string
}

// archetypePhrases are the templates for one archetype. Placeholders are
// {title}, {genre}, {a_tone}, {mood}, {setting}, {lead} and {cast}.
type archetypePhrases struct {
	Focus       string
	Stakes      string
	Description string
	Opening     string
	Closing     string
}

type phrasebook struct {
	Headings Headings

	ActLabels     [archetypeCount]string
	TimesOfDay    [archetypeCount]string
	Interior      string
	Exterior      string
	UpperHeadings bool

	Archetypes [archetypeCount]archetypePhrases

	Genres     map[types.Genre]string
	Tones      map[types.Tone]string
	Moods      map[types.Tone]string
	ToneLines  map[types.Tone][]string
	GenreHooks map[types.Genre][]string

	Summary      string
	Closing      string
	Introduction string // {name}, {trait}

	Conjunction string

	FallbackTitle   string
	FallbackSetting string
	FallbackLogline string
	FallbackLead    string
	FallbackCast    string
	Placeholder     string
}

var phrasebooks = map[types.Language]phrasebook{
	types.LangEnglish: {
		Headings: Headings{
			Summary:   "Summary",
			Structure: "Structure",
			Scenes:    "Scenes",
			FinalNote: "Final Note",
		},
		ActLabels:     [archetypeCount]string{"Act One", "Act Two", "Act Three", "Act Four", "Act Five"},
		TimesOfDay:    [archetypeCount]string{"MORNING", "AFTERNOON", "DUSK", "NIGHT", "DAWN"},
		Interior:      "INT",
		Exterior:      "EXT",
		UpperHeadings: true,
		Archetypes: [archetypeCount]archetypePhrases{
			archSetup: {
				Focus:       "Introduce {lead} in the everyday rhythm of {setting} and plant the {genre} promise of the story.",
				Stakes:      "If {lead} ignores the call, the world of {setting} stays exactly as small as it is.",
				Description: "The mood is set as {lead} is pulled toward the central question of the story.",
				Opening:     "Inside {setting}, {mood} hangs in the air as {lead} steps into frame.",
				Closing:     "A small choice is made, and the story tilts forward.",
			},
			archRising: {
				Focus:       "Complications multiply, and the plan carries {cast} further than anyone expected.",
				Stakes:      "Every shortcut costs trust, and {lead} starts to feel the clock.",
				Description: "Pressure builds in {setting}; alliances are tested and the plan starts to wobble.",
				Opening:     "The pace quickens around {setting}, carried by {mood}.",
				Closing:     "A new obstacle lands just as the plan seemed safe.",
			},
			archMidpoint: {
				Focus:       "A reversal flips what {lead} believed and turns the {genre} question inside out.",
				Stakes:      "The easy path disappears; staying the course now means risking something personal.",
				Description: "A revelation in {setting} changes the rules of the game.",
				Opening:     "Everything pauses in {setting}; {mood} settles over the room.",
				Closing:     "Nothing will go back to the way it was.",
			},
			archClimax: {
				Focus:       "{lead} faces the decisive moment, and the choice of sides falls to {cast}.",
				Stakes:      "Success or failure is now public, and there is no second take.",
				Description: "The confrontation erupts in {setting}, every thread pulled tight at once.",
				Opening:     "{setting} is at its loudest, and {mood} crackles between everyone present.",
				Closing:     "The decision is made, and its echo fills the room.",
			},
			archResolution: {
				Focus:       "The dust settles as {lead} claims what was earned and counts what was lost.",
				Stakes:      "What remains is the cost of the journey and the shape of a new normal.",
				Description: "{setting} is quieter now and reflects how far everyone has travelled.",
				Opening:     "Calm returns to {setting}, touched with {mood}.",
				Closing:     "The last image lingers, then fades out.",
			},
		},
		Genres: map[types.Genre]string{
			types.GenreDrama:       "drama",
			types.GenreComedy:      "comedy",
			types.GenreThriller:    "thriller",
			types.GenreRomance:     "romance",
			types.GenreSciFi:       "sci-fi",
			types.GenreMystery:     "mystery",
			types.GenreSliceOfLife: "slice-of-life",
		},
		Tones: map[types.Tone]string{
			types.ToneHopeful:       "a hopeful",
			types.ToneGritty:        "a gritty",
			types.TonePlayful:       "a playful",
			types.ToneMelancholic:   "a melancholic",
			types.ToneInspirational: "an inspirational",
		},
		Moods: map[types.Tone]string{
			types.ToneHopeful:       "a quiet hope",
			types.ToneGritty:        "a hard-edged tension",
			types.TonePlayful:       "a mischievous energy",
			types.ToneMelancholic:   "a wistful stillness",
			types.ToneInspirational: "a rising sense of purpose",
		},
		ToneLines: map[types.Tone][]string{
			types.ToneHopeful: {
				"I know this can still work if we hold on together.",
				"Every small step today brings us closer.",
				"Look around, the light hasn't left us yet.",
			},
			types.ToneGritty: {
				"Nobody hands us anything here; we take it or we lose it.",
				"Don't sugarcoat it, tell me what it really costs.",
				"We've been knocked down before and we got back up.",
			},
			types.TonePlayful: {
				"Okay, new plan, and this one is absolutely ridiculous.",
				"If this goes wrong, at least it'll be a great story.",
				"Did you really think I'd let you have the last word?",
			},
			types.ToneMelancholic: {
				"Some days I wonder if we already missed our moment.",
				"It feels like everything is slipping through my fingers.",
				"We keep chasing what we can't quite hold.",
			},
			types.ToneInspirational: {
				"This is bigger than us, and that's exactly why we do it.",
				"We don't wait for permission to chase what matters.",
				"Let them doubt us; we'll answer with the work.",
			},
		},
		GenreHooks: map[types.Genre][]string{
			types.GenreDrama: {
				"Tell me the truth before it breaks us.",
				"We owe each other more than silence.",
			},
			types.GenreComedy: {
				"Nobody panic, I have a spreadsheet.",
				"Why is it always me holding the ladder?",
			},
			types.GenreThriller: {
				"Someone is watching every move we make.",
				"We have minutes, not hours.",
			},
			types.GenreRomance: {
				"I never said it, but I always meant it.",
				"Stay a little longer, please.",
			},
			types.GenreSciFi: {
				"The signal is changing; it's learning from us.",
				"If the model is right, tomorrow already happened.",
			},
			types.GenreMystery: {
				"The missing piece was in front of us all along.",
				"Who else knew about the key?",
			},
			types.GenreSliceOfLife: {
				"Chai first, then we fix the world.",
				"Let's just enjoy this ordinary minute.",
			},
		},
		Summary:         "Set in {setting}, {title} is {a_tone} {genre} that follows {cast}. {logline} Across its acts the story moves from a fragile beginning to an earned resolution, with every scene anchored in {setting}.",
		Closing:         "{title} closes as {a_tone} {genre} about {lead}: the final image should answer the promise made in the first scene and leave {setting} changed for good.",
		Introduction:    "We meet {name}, {trait}.",
		Conjunction:     "and",
		FallbackTitle:   "Untitled Script",
		FallbackSetting: "an unnamed city",
		FallbackLogline: "A story waiting to be told.",
		FallbackLead:    "the lead",
		FallbackCast:    "an ensemble of unnamed voices",
		Placeholder:     "Narrator",
	},
	types.LangHindi: {
		Headings: Headings{
			Summary:   "सार",
			Structure: "संरचना",
			Scenes:    "दृश्य",
			FinalNote: "अंतिम नोट",
		},
		ActLabels:  [archetypeCount]string{"अंक एक", "अंक दो", "अंक तीन", "अंक चार", "अंक पाँच"},
		TimesOfDay: [archetypeCount]string{"सुबह", "दोपहर", "शाम", "रात", "भोर"},
		Interior:   "अंदर",
		Exterior:   "बाहर",
		Archetypes: [archetypeCount]archetypePhrases{
			archSetup: {
				Focus:       "{setting} की रोज़मर्रा की लय में {lead} से परिचय, और कहानी के {genre} वादे की नींव।",
				Stakes:      "अगर {lead} इस बुलावे को अनसुना करे, तो {setting} की दुनिया उतनी ही छोटी रह जाएगी।",
				Description: "{lead} के सामने कहानी का मुख्य सवाल धीरे-धीरे खड़ा होता है।",
				Opening:     "{setting} में {mood} के बीच {lead} की एंट्री होती है।",
				Closing:     "एक छोटा-सा फ़ैसला होता है, और कहानी आगे की ओर झुक जाती है।",
			},
			archRising: {
				Focus:       "मुश्किलें बढ़ती हैं, और {cast} की योजना उम्मीद से कहीं आगे निकल जाती है।",
				Stakes:      "हर शॉर्टकट भरोसे की क़ीमत माँगता है, और {lead} पर समय का दबाव बढ़ता है।",
				Description: "{setting} में दबाव बढ़ता है; रिश्तों की परीक्षा होती है और योजना डगमगाने लगती है।",
				Opening:     "{setting} में रफ़्तार तेज़ होती है, हवा में {mood} है।",
				Closing:     "योजना सुरक्षित लगती ही है कि एक नई रुकावट सामने आ जाती है।",
			},
			archMidpoint: {
				Focus:       "एक मोड़ {lead} की हर धारणा को पलट देता है, और {genre} का सवाल उलट जाता है।",
				Stakes:      "आसान रास्ता ग़ायब हो जाता है; अब आगे बढ़ने का मतलब कुछ निजी दाँव पर लगाना है।",
				Description: "{setting} में एक खुलासा खेल के नियम बदल देता है।",
				Opening:     "{setting} में सब कुछ एक पल को थम जाता है; हवा में {mood} है।",
				Closing:     "अब कुछ भी पहले जैसा नहीं रहेगा।",
			},
			archClimax: {
				Focus:       "निर्णायक घड़ी आती है: {lead} के सामने सबसे बड़ी चुनौती है, और {cast} को अपना पक्ष चुनना पड़ता है।",
				Stakes:      "जीत या हार अब सबके सामने है, और दूसरा टेक नहीं मिलेगा।",
				Description: "{setting} में टकराव फूट पड़ता है; हर धागा एक साथ कस जाता है।",
				Opening:     "{setting} अपने सबसे ऊँचे सुर पर है; हर तरफ़ {mood} का असर है।",
				Closing:     "फ़ैसला हो चुका है, और उसकी गूँज पूरे कमरे में भर जाती है।",
			},
			archResolution: {
				Focus:       "धूल बैठती है; {lead} को अपनी मेहनत का फल मिलता है, और खोई चीज़ों का हिसाब भी होता है।",
				Stakes:      "अब सामने इस सफ़र की क़ीमत है और एक नई शुरुआत की शक्ल।",
				Description: "{setting} की शांति बताती है कि सब कितनी दूर आ गए हैं।",
				Opening:     "{setting} में फिर से सुकून लौटता है, साथ में {mood} भी।",
				Closing:     "आख़िरी दृश्य कुछ पल ठहरता है, फिर धीरे-धीरे फ़ेड आउट।",
			},
		},
		Genres: map[types.Genre]string{
			types.GenreDrama:       "ड्रामा",
			types.GenreComedy:      "कॉमेडी",
			types.GenreThriller:    "थ्रिलर",
			types.GenreRomance:     "रोमांस",
			types.GenreSciFi:       "साइंस-फ़िक्शन",
			types.GenreMystery:     "रहस्य",
			types.GenreSliceOfLife: "स्लाइस-ऑफ़-लाइफ़",
		},
		Tones: map[types.Tone]string{
			types.ToneHopeful:       "उम्मीद भरी",
			types.ToneGritty:        "कड़वी-सच्ची",
			types.TonePlayful:       "चुलबुली",
			types.ToneMelancholic:   "उदास",
			types.ToneInspirational: "प्रेरणादायक",
		},
		Moods: map[types.Tone]string{
			types.ToneHopeful:       "उम्मीद की हल्की रोशनी",
			types.ToneGritty:        "तीखा तनाव",
			types.TonePlayful:       "शरारती ऊर्जा",
			types.ToneMelancholic:   "गहरी ख़ामोशी",
			types.ToneInspirational: "नया जोश",
		},
		ToneLines: map[types.Tone][]string{
			types.ToneHopeful: {
				"मुझे पता है, अगर हम साथ रहें तो यह अब भी हो सकता है।",
				"आज का हर छोटा क़दम हमें और क़रीब ले जाता है।",
				"देखो, रोशनी अभी भी हमारे साथ है।",
			},
			types.ToneGritty: {
				"यहाँ कोई कुछ थाली में परोसकर नहीं देता; छीनना पड़ता है।",
				"बात घुमाओ मत, सीधे बताओ इसकी असली क़ीमत क्या है।",
				"हम पहले भी गिरे हैं, और हर बार उठे हैं।",
			},
			types.TonePlayful: {
				"ठीक है, नया प्लान, और यह वाला बिल्कुल पागलपन है।",
				"अगर गड़बड़ हुई, तो कम से कम कहानी तो मज़ेदार बनेगी।",
				"तुम्हें सच में लगा कि आख़िरी बात तुम्हारी होगी?",
			},
			types.ToneMelancholic: {
				"कभी-कभी लगता है, हमारा वक़्त शायद निकल चुका है।",
				"सब कुछ जैसे उँगलियों से फिसलता जा रहा है।",
				"हम उसी के पीछे भागते रहते हैं जो कभी हाथ नहीं आता।",
			},
			types.ToneInspirational: {
				"यह हमसे बड़ा है, और इसीलिए हम इसे करेंगे।",
				"जो ज़रूरी है, उसके लिए हमें किसी की इजाज़त नहीं चाहिए।",
				"उन्हें शक करने दो; जवाब हमारा काम देगा।",
			},
		},
		GenreHooks: map[types.Genre][]string{
			types.GenreDrama: {
				"इससे पहले कि यह हमें तोड़ दे, सच बता दो।",
				"हम एक-दूसरे को ख़ामोशी से ज़्यादा के हक़दार हैं।",
			},
			types.GenreComedy: {
				"घबराओ मत, मेरे पास एक स्प्रेडशीट है।",
				"हर बार सीढ़ी मैं ही क्यों पकड़ूँ?",
			},
			types.GenreThriller: {
				"कोई हमारी हर चाल पर नज़र रखे हुए है।",
				"हमारे पास घंटे नहीं, बस कुछ मिनट हैं।",
			},
			types.GenreRomance: {
				"मैंने कभी कहा नहीं, पर हमेशा यही महसूस किया।",
				"बस थोड़ी देर और रुक जाओ।",
			},
			types.GenreSciFi: {
				"सिग्नल बदल रहा है, यह हमसे सीख रहा है।",
				"अगर मॉडल सही है, तो कल पहले ही हो चुका है।",
			},
			types.GenreMystery: {
				"जो टुकड़ा ग़ायब था, वह शुरू से हमारे सामने था।",
				"चाबी के बारे में और किसे पता था?",
			},
			types.GenreSliceOfLife: {
				"पहले चाय, फिर दुनिया ठीक करेंगे।",
				"चलो, इस आम-से पल का मज़ा लेते हैं।",
			},
		},
		Summary:         "{setting} की पृष्ठभूमि में रची गई \"{title}\" एक {a_tone} {genre} कहानी है, जिसके केंद्र में {cast} हैं। {logline} हर अंक के साथ कहानी एक नाज़ुक शुरुआत से एक कमाए हुए अंत तक पहुँचती है, और हर दृश्य {setting} से जुड़ा रहता है।",
		Closing:         "\"{title}\" एक {a_tone} {genre} कहानी के रूप में समाप्त होती है: {lead} का आख़िरी पल पहले दृश्य के वादे का जवाब देता है, और {setting} हमेशा के लिए बदल जाता है।",
		Introduction:    "यहाँ हमारी मुलाक़ात {name} से होती है ({trait})।",
		Conjunction:     "और",
		FallbackTitle:   "बिना शीर्षक स्क्रिप्ट",
		FallbackSetting: "एक अनाम शहर",
		FallbackLogline: "एक कहानी, जो कहे जाने का इंतज़ार कर रही है।",
		FallbackLead:    "नायक",
		FallbackCast:    "कुछ अनाम आवाज़ें",
		Placeholder:     "सूत्रधार",
	},
}

// phrasesFor returns the phrasebook for lang, falling back to English.
func phrasesFor(lang types.Language) phrasebook {
	if pb, ok := phrasebooks[lang]; ok {
		return pb
	}
	return phrasebooks[types.LangEnglish]
}

// HeadingsFor returns the section headings used for lang.
func HeadingsFor(lang types.Language) Headings {
	return phrasesFor(lang).Headings
}

// PlaceholderSpeaker is the speaker used when a brief has no characters.
func PlaceholderSpeaker(lang types.Language) string {
	return phrasesFor(lang).Placeholder
}
