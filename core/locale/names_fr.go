package locale

import "github.com/FocuswithJustin/Versicle/core/canon"

// french carries the built-in French names.
var french = &Language{
	Code: "fr",
	Long: map[canon.Book][]string{
		canon.Genesis: {"Genèse"},
		canon.Exodus: {"Exode"},
		canon.Leviticus: {"Lévitique"},
		canon.Numbers: {"Nombres"},
		canon.Deuteronomy: {"Deutéronome"},
		canon.Joshua: {"Josué"},
		canon.Judges: {"Juges"},
		canon.Ruth: {"Ruth"},
		canon.FirstSamuel: {"1 Samuel"},
		canon.SecondSamuel: {"2 Samuel"},
		canon.FirstKings: {"1 Rois"},
		canon.SecondKings: {"2 Rois"},
		canon.FirstChronicles: {"1 Chroniques"},
		canon.SecondChronicles: {"2 Chroniques"},
		canon.Ezra: {"Esdras"},
		canon.Nehemiah: {"Néhémie"},
		canon.Esther: {"Esther"},
		canon.Job: {"Job"},
		canon.Psalms: {"Psaumes"},
		canon.Proverbs: {"Proverbes"},
		canon.Ecclesiastes: {"Ecclésiaste"},
		canon.SongOfSolomon: {"Cantique des Cantiques"},
		canon.Isaiah: {"Ésaïe"},
		canon.Jeremiah: {"Jérémie"},
		canon.Lamentations: {"Lamentations"},
		canon.Ezekiel: {"Ézéchiel"},
		canon.Daniel: {"Daniel"},
		canon.Hosea: {"Osée"},
		canon.Joel: {"Joël"},
		canon.Amos: {"Amos"},
		canon.Obadiah: {"Abdias"},
		canon.Jonah: {"Jonas"},
		canon.Micah: {"Michée"},
		canon.Nahum: {"Nahum"},
		canon.Habakkuk: {"Habacuc"},
		canon.Zephaniah: {"Sophonie"},
		canon.Haggai: {"Aggée"},
		canon.Zechariah: {"Zacharie"},
		canon.Malachi: {"Malachie"},
		canon.Matthew: {"Matthieu"},
		canon.Mark: {"Marc"},
		canon.Luke: {"Luc"},
		canon.John: {"Jean"},
		canon.Acts: {"Actes"},
		canon.Romans: {"Romains"},
		canon.FirstCorinthians: {"1 Corinthiens"},
		canon.SecondCorinthians: {"2 Corinthiens"},
		canon.Galatians: {"Galates"},
		canon.Ephesians: {"Éphésiens"},
		canon.Philippians: {"Philippiens"},
		canon.Colossians: {"Colossiens"},
		canon.FirstThessalonians: {"1 Thessaloniciens"},
		canon.SecondThessalonians: {"2 Thessaloniciens"},
		canon.FirstTimothy: {"1 Timothée"},
		canon.SecondTimothy: {"2 Timothée"},
		canon.Titus: {"Tite"},
		canon.Philemon: {"Philémon"},
		canon.Hebrews: {"Hébreux"},
		canon.James: {"Jacques"},
		canon.FirstPeter: {"1 Pierre"},
		canon.SecondPeter: {"2 Pierre"},
		canon.FirstJohn: {"1 Jean"},
		canon.SecondJohn: {"2 Jean"},
		canon.ThirdJohn: {"3 Jean"},
		canon.Jude: {"Jude"},
		canon.Revelation: {"Apocalypse"},
	},
	Short: map[canon.Book][]string{
		canon.Genesis: {"Gn"},
		canon.Exodus: {"Ex"},
		canon.Leviticus: {"Lv", "Lév"},
		canon.Numbers: {"Nb"},
		canon.Deuteronomy: {"Dt"},
		canon.Joshua: {"Jos"},
		canon.Judges: {"Jg"},
		canon.Ruth: {"Rt"},
		canon.FirstSamuel: {"1 S"},
		canon.SecondSamuel: {"2 S"},
		canon.FirstKings: {"1 R"},
		canon.SecondKings: {"2 R"},
		canon.FirstChronicles: {"1 Ch"},
		canon.SecondChronicles: {"2 Ch"},
		canon.Ezra: {"Esd"},
		canon.Nehemiah: {"Né"},
		canon.Esther: {"Est"},
		canon.Job: {"Jb"},
		canon.Psalms: {"Ps"},
		canon.Proverbs: {"Pr"},
		canon.Ecclesiastes: {"Ec"},
		canon.SongOfSolomon: {"Ct"},
		canon.Isaiah: {"És"},
		canon.Jeremiah: {"Jr"},
		canon.Lamentations: {"Lm"},
		canon.Ezekiel: {"Éz"},
		canon.Daniel: {"Dn"},
		canon.Hosea: {"Os"},
		canon.Joel: {"Jl"},
		canon.Amos: {"Am"},
		canon.Obadiah: {"Ab"},
		canon.Jonah: {"Jon"},
		canon.Micah: {"Mi"},
		canon.Nahum: {"Na"},
		canon.Habakkuk: {"Ha"},
		canon.Zephaniah: {"So"},
		canon.Haggai: {"Ag"},
		canon.Zechariah: {"Za"},
		canon.Malachi: {"Mal"},
		canon.Matthew: {"Mt"},
		canon.Mark: {"Mc"},
		canon.Luke: {"Lc"},
		canon.John: {"Jn"},
		canon.Acts: {"Ac"},
		canon.Romans: {"Rm"},
		canon.FirstCorinthians: {"1 Co"},
		canon.SecondCorinthians: {"2 Co"},
		canon.Galatians: {"Ga"},
		canon.Ephesians: {"Ép"},
		canon.Philippians: {"Ph"},
		canon.Colossians: {"Col"},
		canon.FirstThessalonians: {"1 Th"},
		canon.SecondThessalonians: {"2 Th"},
		canon.FirstTimothy: {"1 Tm"},
		canon.SecondTimothy: {"2 Tm"},
		canon.Titus: {"Tt"},
		canon.Philemon: {"Phm"},
		canon.Hebrews: {"Hé"},
		canon.James: {"Jc"},
		canon.FirstPeter: {"1 P"},
		canon.SecondPeter: {"2 P"},
		canon.FirstJohn: {"1 Jn"},
		canon.SecondJohn: {"2 Jn"},
		canon.ThirdJohn: {"3 Jn"},
		canon.Jude: {"Jd"},
		canon.Revelation: {"Ap"},
	},
	ChapterVerseSeps: []string{":", ","},
	RangeSeps:        rangeSeps,
	SpaceAfterBook:   true,
}
