package locale

import "github.com/FocuswithJustin/Versicle/core/canon"

// english carries the built-in English names.
var english = &Language{
	Code: "en",
	Long: map[canon.Book][]string{
		canon.Genesis: {"Genesis"},
		canon.Exodus: {"Exodus"},
		canon.Leviticus: {"Leviticus"},
		canon.Numbers: {"Numbers"},
		canon.Deuteronomy: {"Deuteronomy"},
		canon.Joshua: {"Joshua"},
		canon.Judges: {"Judges"},
		canon.Ruth: {"Ruth"},
		canon.FirstSamuel: {"1 Samuel"},
		canon.SecondSamuel: {"2 Samuel"},
		canon.FirstKings: {"1 Kings"},
		canon.SecondKings: {"2 Kings"},
		canon.FirstChronicles: {"1 Chronicles"},
		canon.SecondChronicles: {"2 Chronicles"},
		canon.Ezra: {"Ezra"},
		canon.Nehemiah: {"Nehemiah"},
		canon.Esther: {"Esther"},
		canon.Job: {"Job"},
		canon.Psalms: {"Psalms"},
		canon.Proverbs: {"Proverbs"},
		canon.Ecclesiastes: {"Ecclesiastes"},
		canon.SongOfSolomon: {"Song of Solomon"},
		canon.Isaiah: {"Isaiah"},
		canon.Jeremiah: {"Jeremiah"},
		canon.Lamentations: {"Lamentations"},
		canon.Ezekiel: {"Ezekiel"},
		canon.Daniel: {"Daniel"},
		canon.Hosea: {"Hosea"},
		canon.Joel: {"Joel"},
		canon.Amos: {"Amos"},
		canon.Obadiah: {"Obadiah"},
		canon.Jonah: {"Jonah"},
		canon.Micah: {"Micah"},
		canon.Nahum: {"Nahum"},
		canon.Habakkuk: {"Habakkuk"},
		canon.Zephaniah: {"Zephaniah"},
		canon.Haggai: {"Haggai"},
		canon.Zechariah: {"Zechariah"},
		canon.Malachi: {"Malachi"},
		canon.Matthew: {"Matthew"},
		canon.Mark: {"Mark"},
		canon.Luke: {"Luke"},
		canon.John: {"John"},
		canon.Acts: {"Acts"},
		canon.Romans: {"Romans"},
		canon.FirstCorinthians: {"1 Corinthians"},
		canon.SecondCorinthians: {"2 Corinthians"},
		canon.Galatians: {"Galatians"},
		canon.Ephesians: {"Ephesians"},
		canon.Philippians: {"Philippians"},
		canon.Colossians: {"Colossians"},
		canon.FirstThessalonians: {"1 Thessalonians"},
		canon.SecondThessalonians: {"2 Thessalonians"},
		canon.FirstTimothy: {"1 Timothy"},
		canon.SecondTimothy: {"2 Timothy"},
		canon.Titus: {"Titus"},
		canon.Philemon: {"Philemon"},
		canon.Hebrews: {"Hebrews"},
		canon.James: {"James"},
		canon.FirstPeter: {"1 Peter"},
		canon.SecondPeter: {"2 Peter"},
		canon.FirstJohn: {"1 John"},
		canon.SecondJohn: {"2 John"},
		canon.ThirdJohn: {"3 John"},
		canon.Jude: {"Jude"},
		canon.Revelation: {"Revelation"},
	},
	Short: map[canon.Book][]string{
		canon.Genesis: {"Gen"},
		canon.Exodus: {"Exod"},
		canon.Leviticus: {"Lev"},
		canon.Numbers: {"Num"},
		canon.Deuteronomy: {"Deut"},
		canon.Joshua: {"Josh"},
		canon.Judges: {"Judg"},
		canon.Ruth: {"Ruth"},
		canon.FirstSamuel: {"1 Sam"},
		canon.SecondSamuel: {"2 Sam"},
		canon.FirstKings: {"1 Kgs"},
		canon.SecondKings: {"2 Kgs"},
		canon.FirstChronicles: {"1 Chr"},
		canon.SecondChronicles: {"2 Chr"},
		canon.Ezra: {"Ezra"},
		canon.Nehemiah: {"Neh"},
		canon.Esther: {"Esth"},
		canon.Job: {"Job"},
		canon.Psalms: {"Ps"},
		canon.Proverbs: {"Prov"},
		canon.Ecclesiastes: {"Eccl"},
		canon.SongOfSolomon: {"Song"},
		canon.Isaiah: {"Isa"},
		canon.Jeremiah: {"Jer"},
		canon.Lamentations: {"Lam"},
		canon.Ezekiel: {"Ezek"},
		canon.Daniel: {"Dan"},
		canon.Hosea: {"Hos"},
		canon.Joel: {"Joel"},
		canon.Amos: {"Amos"},
		canon.Obadiah: {"Obad"},
		canon.Jonah: {"Jonah"},
		canon.Micah: {"Mic"},
		canon.Nahum: {"Nah"},
		canon.Habakkuk: {"Hab"},
		canon.Zephaniah: {"Zeph"},
		canon.Haggai: {"Hag"},
		canon.Zechariah: {"Zech"},
		canon.Malachi: {"Mal"},
		canon.Matthew: {"Matt"},
		canon.Mark: {"Mark"},
		canon.Luke: {"Luke"},
		canon.John: {"John"},
		canon.Acts: {"Acts"},
		canon.Romans: {"Rom"},
		canon.FirstCorinthians: {"1 Cor"},
		canon.SecondCorinthians: {"2 Cor"},
		canon.Galatians: {"Gal"},
		canon.Ephesians: {"Eph"},
		canon.Philippians: {"Phil"},
		canon.Colossians: {"Col"},
		canon.FirstThessalonians: {"1 Thess"},
		canon.SecondThessalonians: {"2 Thess"},
		canon.FirstTimothy: {"1 Tim"},
		canon.SecondTimothy: {"2 Tim"},
		canon.Titus: {"Titus"},
		canon.Philemon: {"Phlm"},
		canon.Hebrews: {"Heb"},
		canon.James: {"Jas"},
		canon.FirstPeter: {"1 Pet"},
		canon.SecondPeter: {"2 Pet"},
		canon.FirstJohn: {"1 John"},
		canon.SecondJohn: {"2 John"},
		canon.ThirdJohn: {"3 John"},
		canon.Jude: {"Jude"},
		canon.Revelation: {"Rev"},
	},
	ChapterVerseSeps: []string{":"},
	RangeSeps:        rangeSeps,
	SpaceAfterBook:   true,
}
