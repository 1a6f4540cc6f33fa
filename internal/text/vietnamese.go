package text

// vietnameseLetters contains every Vietnamese letter in precomposed (NFC)
// form: the six bases with all tone-mark combinations plus đ, upper and
// lower case. Membership is tested after NFC normalization, so decomposed
// input resolves to these runes first.
const vietnameseLetters = "aàảãáạăằẳẵắặâầẩẫấậ" +
	"eèẻẽéẹêềểễếệ" +
	"iìỉĩíị" +
	"oòỏõóọôồổỗốộơờởỡớợ" +
	"uùủũúụưừửữứự" +
	"yỳỷỹýỵ" +
	"đ" +
	"AÀẢÃÁẠĂẰẲẴẮẶÂẦẨẪẤẬ" +
	"EÈẺẼÉẸÊỀỂỄẾỆ" +
	"IÌỈĨÍỊ" +
	"OÒỎÕÓỌÔỒỔỖỐỘƠỜỞỠỚỢ" +
	"UÙỦŨÚỤƯỪỬỮỨỰ" +
	"YỲỶỸÝỴ" +
	"Đ"

// allowedPunct is the punctuation kept by the Normalize character filter.
// The space is included so the filter never breaks words apart.
const allowedPunct = " .,!?;:'\"()-"

var vietnameseRunes = func() map[rune]struct{} {
	set := make(map[rune]struct{}, len(vietnameseLetters))
	for _, r := range vietnameseLetters {
		set[r] = struct{}{}
	}
	return set
}()

// IsVietnameseLetter reports whether r is a Vietnamese letter in composed form.
func IsVietnameseLetter(r rune) bool {
	_, ok := vietnameseRunes[r]
	return ok
}

// abbreviation pairs a literal token with its spoken expansion. Every literal
// ends in a period so a bare prefix inside a longer word can never match.
type abbreviation struct {
	literal   string
	expansion string
}

// abbreviations is the curated expansion table. Matching is case-insensitive
// and anchored to token boundaries; the slice keeps iteration deterministic
// so overlapping literals behave the same on every run.
var abbreviations = []abbreviation{
	{"tp.", "thành phố"},
	{"ths.", "thạc sĩ"},
	{"ts.", "tiến sĩ"},
	{"gs.", "giáo sư"},
	{"pgs.", "phó giáo sư"},
	{"q.", "quận"},
	{"p.", "phường"},
	{"tx.", "thị xã"},
	{"tt.", "thị trấn"},
}

// numberWords maps the digits 0-9 to their Vietnamese words. mười (10) is
// handled separately by the numeral grammar.
var numberWords = [10]string{
	"không", "một", "hai", "ba", "bốn", "năm", "sáu", "bảy", "tám", "chín",
}
