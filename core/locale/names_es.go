package locale

import "github.com/FocuswithJustin/Versicle/core/canon"

// spanish carries the built-in Spanish names.
var spanish = &Language{
	Code: "es",
	Long: map[canon.Book][]string{
		canon.Genesis: {"Génesis"},
		canon.Exodus: {"Éxodo"},
		canon.Leviticus: {"Levítico"},
		canon.Numbers: {"Números"},
		canon.Deuteronomy: {"Deuteronomio"},
		canon.Joshua: {"Josué"},
		canon.Judges: {"Jueces"},
		canon.Ruth: {"Rut"},
		canon.FirstSamuel: {"1 Samuel"},
		canon.SecondSamuel: {"2 Samuel"},
		canon.FirstKings: {"1 Reyes"},
		canon.SecondKings: {"2 Reyes"},
		canon.FirstChronicles: {"1 Crónicas"},
		canon.SecondChronicles: {"2 Crónicas"},
		canon.Ezra: {"Esdras"},
		canon.Nehemiah: {"Nehemías"},
		canon.Esther: {"Ester"},
		canon.Job: {"Job"},
		canon.Psalms: {"Salmos"},
		canon.Proverbs: {"Proverbios"},
		canon.Ecclesiastes: {"Eclesiastés"},
		canon.SongOfSolomon: {"Cantares"},
		canon.Isaiah: {"Isaías"},
		canon.Jeremiah: {"Jeremías"},
		canon.Lamentations: {"Lamentaciones"},
		canon.Ezekiel: {"Ezequiel"},
		canon.Daniel: {"Daniel"},
		canon.Hosea: {"Oseas"},
		canon.Joel: {"Joel"},
		canon.Amos: {"Amós"},
		canon.Obadiah: {"Abdías"},
		canon.Jonah: {"Jonás"},
		canon.Micah: {"Miqueas"},
		canon.Nahum: {"Nahúm"},
		canon.Habakkuk: {"Habacuc"},
		canon.Zephaniah: {"Sofonías"},
		canon.Haggai: {"Hageo"},
		canon.Zechariah: {"Zacarías"},
		canon.Malachi: {"Malaquías"},
		canon.Matthew: {"Mateo"},
		canon.Mark: {"Marcos"},
		canon.Luke: {"Lucas"},
		canon.John: {"Juan"},
		canon.Acts: {"Hechos"},
		canon.Romans: {"Romanos"},
		canon.FirstCorinthians: {"1 Corintios"},
		canon.SecondCorinthians: {"2 Corintios"},
		canon.Galatians: {"Gálatas"},
		canon.Ephesians: {"Efesios"},
		canon.Philippians: {"Filipenses"},
		canon.Colossians: {"Colosenses"},
		canon.FirstThessalonians: {"1 Tesalonicenses"},
		canon.SecondThessalonians: {"2 Tesalonicenses"},
		canon.FirstTimothy: {"1 Timoteo"},
		canon.SecondTimothy: {"2 Timoteo"},
		canon.Titus: {"Tito"},
		canon.Philemon: {"Filemón"},
		canon.Hebrews: {"Hebreos"},
		canon.James: {"Santiago"},
		canon.FirstPeter: {"1 Pedro"},
		canon.SecondPeter: {"2 Pedro"},
		canon.FirstJohn: {"1 Juan"},
		canon.SecondJohn: {"2 Juan"},
		canon.ThirdJohn: {"3 Juan"},
		canon.Jude: {"Judas"},
		canon.Revelation: {"Apocalipsis"},
	},
	Short: map[canon.Book][]string{
		canon.Genesis: {"Gn"},
		canon.Exodus: {"Éx"},
		canon.Leviticus: {"Lv"},
		canon.Numbers: {"Nm"},
		canon.Deuteronomy: {"Dt"},
		canon.Joshua: {"Jos"},
		canon.Judges: {"Jue"},
		canon.Ruth: {"Rt"},
		canon.FirstSamuel: {"1 S"},
		canon.SecondSamuel: {"2 S"},
		canon.FirstKings: {"1 R"},
		canon.SecondKings: {"2 R"},
		canon.FirstChronicles: {"1 Cr"},
		canon.SecondChronicles: {"2 Cr"},
		canon.Ezra: {"Esd"},
		canon.Nehemiah: {"Neh"},
		canon.Esther: {"Est"},
		canon.Job: {"Job"},
		canon.Psalms: {"Sal"},
		canon.Proverbs: {"Pr"},
		canon.Ecclesiastes: {"Ec"},
		canon.SongOfSolomon: {"Cnt"},
		canon.Isaiah: {"Is"},
		canon.Jeremiah: {"Jer"},
		canon.Lamentations: {"Lm"},
		canon.Ezekiel: {"Ez"},
		canon.Daniel: {"Dn"},
		canon.Hosea: {"Os"},
		canon.Joel: {"Jl"},
		canon.Amos: {"Am"},
		canon.Obadiah: {"Abd"},
		canon.Jonah: {"Jon"},
		canon.Micah: {"Miq"},
		canon.Nahum: {"Nah"},
		canon.Habakkuk: {"Hab"},
		canon.Zephaniah: {"Sof"},
		canon.Haggai: {"Hag"},
		canon.Zechariah: {"Zac"},
		canon.Malachi: {"Mal"},
		canon.Matthew: {"Mt"},
		canon.Mark: {"Mr"},
		canon.Luke: {"Lc"},
		canon.John: {"Jn"},
		canon.Acts: {"Hch"},
		canon.Romans: {"Ro"},
		canon.FirstCorinthians: {"1 Co"},
		canon.SecondCorinthians: {"2 Co"},
		canon.Galatians: {"Gál"},
		canon.Ephesians: {"Ef"},
		canon.Philippians: {"Flp"},
		canon.Colossians: {"Col"},
		canon.FirstThessalonians: {"1 Ts"},
		canon.SecondThessalonians: {"2 Ts"},
		canon.FirstTimothy: {"1 Ti"},
		canon.SecondTimothy: {"2 Ti"},
		canon.Titus: {"Tit"},
		canon.Philemon: {"Flm"},
		canon.Hebrews: {"Heb"},
		canon.James: {"Stg"},
		canon.FirstPeter: {"1 P"},
		canon.SecondPeter: {"2 P"},
		canon.FirstJohn: {"1 Jn"},
		canon.SecondJohn: {"2 Jn"},
		canon.ThirdJohn: {"3 Jn"},
		canon.Jude: {"Jud"},
		canon.Revelation: {"Ap"},
	},
	ChapterVerseSeps: []string{":", ","},
	RangeSeps:        rangeSeps,
	SpaceAfterBook:   true,
}
