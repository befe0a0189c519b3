package chartab

import "github.com/npillmayer/paliscript/script"

// The rows below are ordered consonants, specials, vowel signs. Columns follow
// script column order: Sinhala, Devanagari, Roman, Thai, Lao, Myanmar, Khmer,
// Bengali, Gurmukhi, Tai Tham, Gujarati, Telugu, Kannada, Malayalam, Brahmi,
// Tibetan, Cyrillic, Shan.

var consonants = []Entry{
	// velar stops
	{Kind: Consonant, Forms: [script.Count]string{"ක", "क", "k", "ก", "ກ", "က", "ក", "ক", "ਕ", "\u1A20", "ક", "క", "ಕ", "ക", "\U00011013", "ཀ", "к", "ၵ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ඛ", "ख", "kh", "ข", "ຂ", "ခ", "ខ", "খ", "ਖ", "\u1A21", "ખ", "ఖ", "ಖ", "ഖ", "\U00011014", "ཁ", "кх", "ၶ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ග", "ग", "g", "ค", "ຄ", "ဂ", "គ", "গ", "ਗ", "\u1A23", "ગ", "గ", "ಗ", "ഗ", "\U00011015", "ག", "г", "ၷ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ඝ", "घ", "gh", "ฆ", "ຆ", "ဃ", "ឃ", "ঘ", "ਘ", "\u1A25", "ઘ", "ఘ", "ಘ", "ഘ", "\U00011016", "ག\u0FB7", "гх", "ꧠ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ඞ", "ङ", "ṅ", "ง", "ງ", "င", "ង", "ঙ", "ਙ", "\u1A26", "ઙ", "ఙ", "ಙ", "ങ", "\U00011017", "ང", "н\u0307", "င"}},
	// palatal stops
	{Kind: Consonant, Forms: [script.Count]string{"ච", "च", "c", "จ", "ຈ", "စ", "ច", "চ", "ਚ", "\u1A27", "ચ", "చ", "ಚ", "ച", "\U00011018", "ཙ", "ч", "ၸ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ඡ", "छ", "ch", "ฉ", "ຉ", "ဆ", "ឆ", "ছ", "ਛ", "\u1A28", "છ", "ఛ", "ಛ", "ഛ", "\U00011019", "ཚ", "чх", "ꧡ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ජ", "ज", "j", "ช", "ຊ", "ဇ", "ជ", "জ", "ਜ", "\u1A29", "જ", "జ", "ಜ", "ജ", "\U0001101A", "ཛ", "дж", "ၹ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ඣ", "झ", "jh", "ฌ", "ຌ", "ဈ", "ឈ", "ঝ", "ਝ", "\u1A2B", "ઝ", "ఝ", "ಝ", "ഝ", "\U0001101B", "ཛ\u0FB7", "джх", "ꧢ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ඤ", "ञ", "ñ", "ญ", "ຎ", "ဉ", "ញ", "ঞ", "ਞ", "\u1A2C", "ઞ", "ఞ", "ಞ", "ഞ", "\U0001101C", "ཉ", "н\u0303", "ၺ"}},
	// retroflex stops
	{Kind: Consonant, Forms: [script.Count]string{"ට", "ट", "ṭ", "ฏ", "ຏ", "ဋ", "ដ", "ট", "ਟ", "\u1A2D", "ટ", "ట", "ಟ", "ട", "\U0001101D", "ཊ", "т\u0323", "ꩦ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ඨ", "ठ", "ṭh", "ฐ", "ຐ", "ဌ", "ឋ", "ঠ", "ਠ", "\u1A2E", "ઠ", "ఠ", "ಠ", "ഠ", "\U0001101E", "ཋ", "т\u0323х", "ꩧ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ඩ", "ड", "ḍ", "ฑ", "ຑ", "ဍ", "ឌ", "ড", "ਡ", "\u1A2F", "ડ", "డ", "ಡ", "ഡ", "\U0001101F", "ཌ", "д\u0323", "ꩨ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ඪ", "ढ", "ḍh", "ฒ", "ຒ", "ဎ", "ឍ", "ঢ", "ਢ", "\u1A30", "ઢ", "ఢ", "ಢ", "ഢ", "\U00011020", "ཌ\u0FB7", "д\u0323х", "ꩩ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ණ", "ण", "ṇ", "ณ", "ຓ", "ဏ", "ណ", "ণ", "ਣ", "\u1A31", "ણ", "ణ", "ಣ", "ണ", "\U00011021", "ཎ", "н\u0323", "ꩪ"}},
	// dental stops
	{Kind: Consonant, Forms: [script.Count]string{"ත", "त", "t", "ต", "ຕ", "တ", "ត", "ত", "ਤ", "\u1A32", "ત", "త", "ತ", "ത", "\U00011022", "ཏ", "т", "တ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ථ", "थ", "th", "ถ", "ຖ", "ထ", "ថ", "থ", "ਥ", "\u1A33", "થ", "థ", "ಥ", "ഥ", "\U00011023", "ཐ", "тх", "ထ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ද", "द", "d", "ท", "ທ", "ဒ", "ទ", "দ", "ਦ", "\u1A34", "દ", "ద", "ದ", "ദ", "\U00011024", "ད", "д", "ၻ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ධ", "ध", "dh", "ธ", "ຘ", "ဓ", "ធ", "ধ", "ਧ", "\u1A35", "ધ", "ధ", "ಧ", "ധ", "\U00011025", "ད\u0FB7", "дх", "ꩪ"}},
	{Kind: Consonant, Forms: [script.Count]string{"න", "न", "n", "น", "ນ", "န", "ន", "ন", "ਨ", "\u1A36", "ન", "న", "ನ", "ന", "\U00011026", "ན", "н", "ၼ"}},
	// labial stops
	{Kind: Consonant, Forms: [script.Count]string{"ප", "प", "p", "ป", "ປ", "ပ", "ប", "প", "ਪ", "\u1A38", "પ", "ప", "ಪ", "പ", "\U00011027", "པ", "п", "ပ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ඵ", "फ", "ph", "ผ", "ຜ", "ဖ", "ផ", "ফ", "ਫ", "\u1A39", "ફ", "ఫ", "ಫ", "ഫ", "\U00011028", "ཕ", "пх", "ၽ"}},
	{Kind: Consonant, Forms: [script.Count]string{"බ", "ब", "b", "พ", "ພ", "ဗ", "ព", "ব", "ਬ", "\u1A3B", "બ", "బ", "ಬ", "ബ", "\U00011029", "བ", "б", "ၿ"}},
	{Kind: Consonant, Forms: [script.Count]string{"භ", "भ", "bh", "ภ", "ຠ", "ဘ", "ភ", "ভ", "ਭ", "\u1A3D", "ભ", "భ", "ಭ", "ഭ", "\U0001102A", "བ\u0FB7", "бх", "ꧤ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ම", "म", "m", "ม", "ມ", "မ", "ម", "ম", "ਮ", "\u1A3E", "મ", "మ", "ಮ", "മ", "\U0001102B", "མ", "м", "မ"}},
	// liquids, sibilant, aspirate
	{Kind: Consonant, Forms: [script.Count]string{"ය", "य", "y", "ย", "ຍ", "ယ", "យ", "য", "ਯ", "\u1A3F", "ય", "య", "ಯ", "യ", "\U0001102C", "ཡ", "й", "ယ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ර", "र", "r", "ร", "ຣ", "ရ", "រ", "র", "ਰ", "\u1A41", "ર", "ర", "ರ", "ര", "\U0001102D", "ར", "р", "ရ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ල", "ल", "l", "ล", "ລ", "လ", "ល", "ল", "ਲ", "\u1A43", "લ", "ల", "ಲ", "ല", "\U0001102E", "ལ", "л", "လ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ළ", "ळ", "ḷ", "ฬ", "ຬ", "ဠ", "ឡ", "ল\u09BC", "ਲ\u0A3C", "\u1A4A", "ળ", "ళ", "ಳ", "ള", "\U00011034", "ལ\u0F39", "л\u0323", "ꩮ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ව", "व", "v", "ว", "ວ", "ဝ", "វ", "ৰ", "ਵ", "\u1A45", "વ", "వ", "ವ", "വ", "\U0001102F", "ཝ", "в", "ဝ"}},
	{Kind: Consonant, Forms: [script.Count]string{"ස", "स", "s", "ส", "ສ", "သ", "ស", "স", "ਸ", "\u1A48", "સ", "స", "ಸ", "സ", "\U00011032", "ས", "с", "သ"}},
	{Kind: Consonant, Forms: [script.Count]string{"හ", "ह", "h", "ห", "ຫ", "ဟ", "ហ", "হ", "ਹ", "\u1A49", "હ", "హ", "ಹ", "ഹ", "\U00011033", "ཧ", "х", "ႁ"}},
}

var specials = []Entry{
	// independent vowels
	{Kind: IndependentVowel, Forms: [script.Count]string{"අ", "अ", "a", "อ", "ອ", "အ", "អ", "অ", "ਅ", "\u1A4B", "અ", "అ", "ಅ", "അ", "\U00011005", "ཨ", "а", "ဢ"}},
	{Kind: IndependentVowel, Forms: [script.Count]string{"ආ", "आ", "ā", "อา", "ອາ", "အ\u102C", "អ\u17B6", "আ", "ਆ", "\u1A4C", "આ", "ఆ", "ಆ", "ആ", "\U00011006", "ཨ\u0F71", "а\u0304", "ဢ\u1083"}},
	{Kind: IndependentVowel, Forms: [script.Count]string{"ඉ", "इ", "i", "อ\u0E34", "ອ\u0EB4", "ဣ", "ឥ", "ই", "ਇ", "\u1A4D", "ઇ", "ఇ", "ಇ", "ഇ", "\U00011007", "ཨ\u0F72", "и", "ဢ\u102D"}},
	{Kind: IndependentVowel, Forms: [script.Count]string{"ඊ", "ई", "ī", "อ\u0E35", "ອ\u0EB5", "ဤ", "ឦ", "ঈ", "ਈ", "\u1A4E", "ઈ", "ఈ", "ಈ", "ഈ", "\U00011008", "ཨ\u0F71\u0F72", "ӣ", "ဢ\u102E"}},
	{Kind: IndependentVowel, Forms: [script.Count]string{"උ", "उ", "u", "อ\u0E38", "ອ\u0EB8", "ဥ", "ឧ", "উ", "ਉ", "\u1A4F", "ઉ", "ఉ", "ಉ", "ഉ", "\U00011009", "ཨ\u0F74", "у", "ဢ\u102F"}},
	{Kind: IndependentVowel, Forms: [script.Count]string{"ඌ", "ऊ", "ū", "อ\u0E39", "ອ\u0EB9", "ဦ", "ឩ", "ঊ", "ਊ", "\u1A50", "ઊ", "ఊ", "ಊ", "ഊ", "\U0001100A", "ཨ\u0F71\u0F74", "ӯ", "ဢ\u1030"}},
	{Kind: IndependentVowel, Forms: [script.Count]string{"එ", "ए", "e", "อเ", "ອເ", "ဧ", "ឯ", "এ", "ਏ", "\u1A51", "એ", "ఏ", "ಏ", "ഏ", "\U0001100F", "ཨ\u0F7A", "е", "ဢ\u1031"}},
	{Kind: IndependentVowel, Forms: [script.Count]string{"ඔ", "ओ", "o", "อโ", "ອໂ", "ဩ", "ឱ", "ও", "ਓ", "\u1A52", "ઓ", "ఓ", "ಓ", "ഓ", "\U00011011", "ཨ\u0F7C", "о", "ဢ\u1030ဝ\u103A"}},
	// niggahita (anusvara)
	{Kind: SpecialMark, Forms: [script.Count]string{"\u0D82", "\u0902", "ṃ", "\u0E4D", "\u0ECD", "\u1036", "\u17C6", "\u0982", "\u0A02", "\u1A74", "\u0A82", "\u0C02", "\u0C82", "\u0D02", "\U00011001", "\u0F7E", "м\u0323", "\u1036"}},
	// visarga, found in Devanagari source texts only
	{Kind: SpecialMark, Forms: [script.Count]string{"\u0D83", "\u0903", "ḥ", "ะ", "ະ", "\u1038", "\u17C7", "\u0983", "\u0A03", "\u1A61", "\u0A83", "\u0C03", "\u0C83", "\u0D03", "\U00011002", "\u0F7F", "х\u0323", "\u1038"}},
	// virama; empty in Roman and Cyrillic
	{Kind: SpecialMark, Forms: [script.Count]string{"\u0DCA", "\u094D", "", "\u0E3A", "\u0EBA", "\u1039", "\u17D2", "\u09CD", "\u0A4D", "\u1A60", "\u0ACD", "\u0C4D", "\u0CCD", "\u0D4D", "\U00011046", "\u0F84", "", "\u103A"}},
	// digits
	{Kind: SpecialMark, Forms: [script.Count]string{"0", "०", "0", "๐", "໐", "၀", "០", "০", "੦", "\u1A90", "૦", "౦", "೦", "൦", "\U00011066", "༠", "0", "႐"}},
	{Kind: SpecialMark, Forms: [script.Count]string{"1", "१", "1", "๑", "໑", "၁", "១", "১", "੧", "\u1A91", "૧", "౧", "೧", "൧", "\U00011067", "༡", "1", "႑"}},
	{Kind: SpecialMark, Forms: [script.Count]string{"2", "२", "2", "๒", "໒", "၂", "២", "২", "੨", "\u1A92", "૨", "౨", "೨", "൨", "\U00011068", "༢", "2", "႒"}},
	{Kind: SpecialMark, Forms: [script.Count]string{"3", "३", "3", "๓", "໓", "၃", "៣", "৩", "੩", "\u1A93", "૩", "౩", "೩", "൩", "\U00011069", "༣", "3", "႓"}},
	{Kind: SpecialMark, Forms: [script.Count]string{"4", "४", "4", "๔", "໔", "၄", "៤", "৪", "੪", "\u1A94", "૪", "౪", "೪", "൪", "\U0001106A", "༤", "4", "႔"}},
	{Kind: SpecialMark, Forms: [script.Count]string{"5", "५", "5", "๕", "໕", "၅", "៥", "৫", "੫", "\u1A95", "૫", "౫", "೫", "൫", "\U0001106B", "༥", "5", "႕"}},
	{Kind: SpecialMark, Forms: [script.Count]string{"6", "६", "6", "๖", "໖", "၆", "៦", "৬", "੬", "\u1A96", "૬", "౬", "೬", "൬", "\U0001106C", "༦", "6", "႖"}},
	{Kind: SpecialMark, Forms: [script.Count]string{"7", "७", "7", "๗", "໗", "၇", "៧", "৭", "੭", "\u1A97", "૭", "౭", "೭", "൭", "\U0001106D", "༧", "7", "႗"}},
	{Kind: SpecialMark, Forms: [script.Count]string{"8", "८", "8", "๘", "໘", "၈", "៨", "৮", "੮", "\u1A98", "૮", "౮", "೮", "൮", "\U0001106E", "༨", "8", "႘"}},
	{Kind: SpecialMark, Forms: [script.Count]string{"9", "९", "9", "๙", "໙", "၉", "៩", "৯", "੯", "\u1A99", "૯", "౯", "೯", "൯", "\U0001106F", "༩", "9", "႙"}},
}

var vowels = []Entry{
	{Kind: DependentVowelSign, Forms: [script.Count]string{"\u0DCF", "\u093E", "ā", "า", "າ", "\u102C", "\u17B6", "\u09BE", "\u0A3E", "\u1A63", "\u0ABE", "\u0C3E", "\u0CBE", "\u0D3E", "\U00011038", "\u0F71", "а\u0304", "\u1083"}},
	{Kind: DependentVowelSign, Forms: [script.Count]string{"\u0DD2", "\u093F", "i", "\u0E34", "\u0EB4", "\u102D", "\u17B7", "\u09BF", "\u0A3F", "\u1A65", "\u0ABF", "\u0C3F", "\u0CBF", "\u0D3F", "\U0001103A", "\u0F72", "и", "\u102D"}},
	{Kind: DependentVowelSign, Forms: [script.Count]string{"\u0DD3", "\u0940", "ī", "\u0E35", "\u0EB5", "\u102E", "\u17B8", "\u09C0", "\u0A40", "\u1A66", "\u0AC0", "\u0C40", "\u0CC0", "\u0D40", "\U0001103B", "\u0F71\u0F72", "ӣ", "\u102E"}},
	{Kind: DependentVowelSign, Forms: [script.Count]string{"\u0DD4", "\u0941", "u", "\u0E38", "\u0EB8", "\u102F", "\u17BB", "\u09C1", "\u0A41", "\u1A69", "\u0AC1", "\u0C41", "\u0CC1", "\u0D41", "\U0001103C", "\u0F74", "у", "\u102F"}},
	{Kind: DependentVowelSign, Forms: [script.Count]string{"\u0DD6", "\u0942", "ū", "\u0E39", "\u0EB9", "\u1030", "\u17BC", "\u09C2", "\u0A42", "\u1A6A", "\u0AC2", "\u0C42", "\u0CC2", "\u0D42", "\U0001103D", "\u0F71\u0F74", "ӯ", "\u1030"}},
	// Thai and Lao write e and o before the consonant, see the reordering rule
	{Kind: DependentVowelSign, Forms: [script.Count]string{"\u0DD9", "\u0947", "e", "เ", "ເ", "\u1031", "\u17C1", "\u09C7", "\u0A47", "\u1A6E", "\u0AC7", "\u0C47", "\u0CC7", "\u0D47", "\U00011042", "\u0F7A", "е", "\u1031"}},
	{Kind: DependentVowelSign, Forms: [script.Count]string{"\u0DDC", "\u094B", "o", "โ", "ໂ", "\u1031\u102C", "\u17C4", "\u09CB", "\u0A4B", "\u1A6E\u1A63", "\u0ACB", "\u0C4B", "\u0CCB", "\u0D4B", "\U00011044", "\u0F7C", "о", "\u1031\u1083"}},
}
