package textmine

// supplementaryStopWords is the broader dictionary applied after the
// general stop-word pass. It targets the high-frequency filler the
// general list leaves behind, including apostrophe-joined contraction
// forms, which is why it must run before punctuation removal.
var supplementaryStopWords = []string{
	"a's", "ain't", "aren't", "c'mon", "c's", "can't", "couldn't",
	"didn't", "doesn't", "don't", "hadn't", "hasn't", "haven't", "he's",
	"here's", "i'd", "i'll", "i'm", "i've", "isn't", "it'd", "it'll",
	"it's", "let's", "shouldn't", "t's", "that's", "there's", "they'd",
	"they'll", "they're", "they've", "wasn't", "we'd", "we'll", "we're",
	"we've", "weren't", "what's", "where's", "who's", "won't",
	"wouldn't", "you'd", "you'll", "you're", "you've",

	"able", "according", "accordingly", "across", "actually", "afterwards",
	"allow", "allows", "almost", "alone", "along", "already", "although",
	"always", "among", "amongst", "anybody", "anyhow", "anyone",
	"anything", "anyway", "anyways", "anywhere", "apart", "appear",
	"appreciate", "appropriate", "around", "aside", "asking",
	"associated", "available", "away", "awfully", "became", "become",
	"becomes", "becoming", "beforehand", "behind", "believe", "beside",
	"besides", "best", "better", "beyond", "brief", "came", "cause",
	"causes", "certain", "certainly", "clearly", "come", "comes",
	"concerning", "consequently", "consider", "considering", "contain",
	"containing", "contains", "corresponding", "course", "currently",
	"definitely", "described", "despite", "different", "done",
	"downwards", "eight", "either", "else", "elsewhere", "enough",
	"entirely", "especially", "etc", "even", "ever", "every",
	"everybody", "everyone", "everything", "everywhere", "exactly",
	"example", "except", "far", "fifth", "first", "five", "followed",
	"following", "follows", "former", "formerly", "forth", "four",
	"furthermore", "get", "gets", "getting", "given", "gives", "goes",
	"going", "gone", "got", "gotten", "greetings", "happens", "hardly",
	"hello", "help", "hence", "hereafter", "hereby", "herein",
	"hereupon", "hi", "hither", "hopefully", "howbeit", "however",
	"ignored", "immediate", "inasmuch", "indeed", "indicate",
	"indicated", "indicates", "inner", "insofar", "instead", "inward",
	"keep", "keeps", "kept", "know", "known", "knows", "last", "lately",
	"later", "latter", "latterly", "least", "less", "lest", "let",
	"like", "liked", "likely", "little", "look", "looking", "looks",
	"ltd", "mainly", "many", "may", "maybe", "mean", "meanwhile",
	"merely", "might", "moreover", "mostly", "much", "must", "name",
	"namely", "nd", "near", "nearly", "necessary", "need", "needs",
	"neither", "never", "nevertheless", "new", "next", "nine", "nobody",
	"non", "none", "noone", "normally", "nothing", "novel", "nowhere",
	"obviously", "often", "oh", "ok", "okay", "old", "one", "ones",
	"onto", "otherwise", "ought", "outside", "overall", "particular",
	"particularly", "per", "perhaps", "placed", "please", "plus",
	"possible", "presumably", "probably", "provides", "que", "quite",
	"rather", "rd", "really", "reasonably", "regarding", "regardless",
	"regards", "relatively", "respectively", "right", "said", "saw",
	"say", "saying", "says", "second", "secondly", "see", "seeing",
	"seem", "seemed", "seeming", "seems", "seen", "self", "selves",
	"sensible", "sent", "serious", "seriously", "seven", "several",
	"shall", "since", "six", "somebody", "somehow", "someone",
	"something", "sometime", "sometimes", "somewhat", "somewhere",
	"soon", "sorry", "specified", "specify", "specifying", "still",
	"sub", "sup", "sure", "take", "taken", "tell", "tends", "th",
	"thank", "thanks", "thanx", "thats", "thence", "thereafter",
	"thereby", "therefore", "therein", "theres", "thereupon", "think",
	"third", "thorough", "thoroughly", "though", "three", "throughout",
	"thru", "thus", "together", "took", "toward", "towards", "tried",
	"tries", "truly", "try", "trying", "twice", "two", "un",
	"unfortunately", "unless", "unlikely", "unto", "upon", "us", "use",
	"used", "useful", "uses", "using", "usually", "various", "via",
	"viz", "vs", "want", "wants", "way", "welcome", "well", "went",
	"whatever", "whence", "whenever", "whereafter", "whereas",
	"whereby", "wherein", "whereupon", "wherever", "whether", "whither",
	"whoever", "whole", "whose", "willing", "wish", "within", "without",
	"wonder", "yes", "yet",
}
