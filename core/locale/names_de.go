package locale

import "github.com/FocuswithJustin/Versicle/core/canon"

// german carries the built-in German names. German writes chapter and verse with a comma.
var german = &Language{
	Code: "de",
	Long: map[canon.Book][]string{
		canon.Genesis: {"1. Mose", "Genesis"},
		canon.Exodus: {"2. Mose", "Exodus"},
		canon.Leviticus: {"3. Mose", "Levitikus"},
		canon.Numbers: {"4. Mose", "Numeri"},
		canon.Deuteronomy: {"5. Mose", "Deuteronomium"},
		canon.Joshua: {"Josua"},
		canon.Judges: {"Richter"},
		canon.Ruth: {"Ruth"},
		canon.FirstSamuel: {"1. Samuel"},
		canon.SecondSamuel: {"2. Samuel"},
		canon.FirstKings: {"1. Könige"},
		canon.SecondKings: {"2. Könige"},
		canon.FirstChronicles: {"1. Chronik"},
		canon.SecondChronicles: {"2. Chronik"},
		canon.Ezra: {"Esra"},
		canon.Nehemiah: {"Nehemia"},
		canon.Esther: {"Ester"},
		canon.Job: {"Hiob"},
		canon.Psalms: {"Psalmen"},
		canon.Proverbs: {"Sprüche"},
		canon.Ecclesiastes: {"Prediger"},
		canon.SongOfSolomon: {"Hohelied"},
		canon.Isaiah: {"Jesaja"},
		canon.Jeremiah: {"Jeremia"},
		canon.Lamentations: {"Klagelieder"},
		canon.Ezekiel: {"Hesekiel"},
		canon.Daniel: {"Daniel"},
		canon.Hosea: {"Hosea"},
		canon.Joel: {"Joel"},
		canon.Amos: {"Amos"},
		canon.Obadiah: {"Obadja"},
		canon.Jonah: {"Jona"},
		canon.Micah: {"Micha"},
		canon.Nahum: {"Nahum"},
		canon.Habakkuk: {"Habakuk"},
		canon.Zephaniah: {"Zephanja"},
		canon.Haggai: {"Haggai"},
		canon.Zechariah: {"Sacharja"},
		canon.Malachi: {"Maleachi"},
		canon.Matthew: {"Matthäus"},
		canon.Mark: {"Markus"},
		canon.Luke: {"Lukas"},
		canon.John: {"Johannes"},
		canon.Acts: {"Apostelgeschichte"},
		canon.Romans: {"Römer"},
		canon.FirstCorinthians: {"1. Korinther"},
		canon.SecondCorinthians: {"2. Korinther"},
		canon.Galatians: {"Galater"},
		canon.Ephesians: {"Epheser"},
		canon.Philippians: {"Philipper"},
		canon.Colossians: {"Kolosser"},
		canon.FirstThessalonians: {"1. Thessalonicher"},
		canon.SecondThessalonians: {"2. Thessalonicher"},
		canon.FirstTimothy: {"1. Timotheus"},
		canon.SecondTimothy: {"2. Timotheus"},
		canon.Titus: {"Titus"},
		canon.Philemon: {"Philemon"},
		canon.Hebrews: {"Hebräer"},
		canon.James: {"Jakobus"},
		canon.FirstPeter: {"1. Petrus"},
		canon.SecondPeter: {"2. Petrus"},
		canon.FirstJohn: {"1. Johannes"},
		canon.SecondJohn: {"2. Johannes"},
		canon.ThirdJohn: {"3. Johannes"},
		canon.Jude: {"Judas"},
		canon.Revelation: {"Offenbarung"},
	},
	Short: map[canon.Book][]string{
		canon.Genesis: {"1Mo"},
		canon.Exodus: {"2Mo"},
		canon.Leviticus: {"3Mo"},
		canon.Numbers: {"4Mo"},
		canon.Deuteronomy: {"5Mo"},
		canon.Joshua: {"Jos"},
		canon.Judges: {"Ri"},
		canon.Ruth: {"Ruth"},
		canon.FirstSamuel: {"1Sam"},
		canon.SecondSamuel: {"2Sam"},
		canon.FirstKings: {"1Kön"},
		canon.SecondKings: {"2Kön"},
		canon.FirstChronicles: {"1Chr"},
		canon.SecondChronicles: {"2Chr"},
		canon.Ezra: {"Esr"},
		canon.Nehemiah: {"Neh"},
		canon.Esther: {"Est"},
		canon.Job: {"Hi"},
		canon.Psalms: {"Ps", "Psalmen"},
		canon.Proverbs: {"Spr"},
		canon.Ecclesiastes: {"Pred"},
		canon.SongOfSolomon: {"Hld"},
		canon.Isaiah: {"Jes"},
		canon.Jeremiah: {"Jer"},
		canon.Lamentations: {"Klgl"},
		canon.Ezekiel: {"Hes"},
		canon.Daniel: {"Dan"},
		canon.Hosea: {"Hos"},
		canon.Joel: {"Joel"},
		canon.Amos: {"Am"},
		canon.Obadiah: {"Ob"},
		canon.Jonah: {"Jon"},
		canon.Micah: {"Mi"},
		canon.Nahum: {"Nah"},
		canon.Habakkuk: {"Hab"},
		canon.Zephaniah: {"Zeph"},
		canon.Haggai: {"Hag"},
		canon.Zechariah: {"Sach"},
		canon.Malachi: {"Mal"},
		canon.Matthew: {"Mt"},
		canon.Mark: {"Mk"},
		canon.Luke: {"Lk"},
		canon.John: {"Joh"},
		canon.Acts: {"Apg"},
		canon.Romans: {"Röm"},
		canon.FirstCorinthians: {"1Kor"},
		canon.SecondCorinthians: {"2Kor"},
		canon.Galatians: {"Gal"},
		canon.Ephesians: {"Eph"},
		canon.Philippians: {"Phil"},
		canon.Colossians: {"Kol"},
		canon.FirstThessalonians: {"1Thess"},
		canon.SecondThessalonians: {"2Thess"},
		canon.FirstTimothy: {"1Tim"},
		canon.SecondTimothy: {"2Tim"},
		canon.Titus: {"Tit"},
		canon.Philemon: {"Phlm"},
		canon.Hebrews: {"Hebr"},
		canon.James: {"Jak"},
		canon.FirstPeter: {"1Petr"},
		canon.SecondPeter: {"2Petr"},
		canon.FirstJohn: {"1Joh"},
		canon.SecondJohn: {"2Joh"},
		canon.ThirdJohn: {"3Joh"},
		canon.Jude: {"Jud"},
		canon.Revelation: {"Offb"},
	},
	ChapterVerseSeps: []string{",", ":"},
	RangeSeps:        rangeSeps,
	SpaceAfterBook:   true,
}
