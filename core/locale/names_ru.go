package locale

import "github.com/FocuswithJustin/Versicle/core/canon"

// russian carries the built-in Russian names.
var russian = &Language{
	Code: "ru",
	Long: map[canon.Book][]string{
		canon.Genesis: {"Бытие"},
		canon.Exodus: {"Исход"},
		canon.Leviticus: {"Левит"},
		canon.Numbers: {"Числа"},
		canon.Deuteronomy: {"Второзаконие"},
		canon.Joshua: {"Иисус Навин"},
		canon.Judges: {"Судьи"},
		canon.Ruth: {"Руфь"},
		canon.FirstSamuel: {"1 Царств"},
		canon.SecondSamuel: {"2 Царств"},
		canon.FirstKings: {"3 Царств"},
		canon.SecondKings: {"4 Царств"},
		canon.FirstChronicles: {"1 Паралипоменон"},
		canon.SecondChronicles: {"2 Паралипоменон"},
		canon.Ezra: {"Ездра"},
		canon.Nehemiah: {"Неемия"},
		canon.Esther: {"Есфирь"},
		canon.Job: {"Иов"},
		canon.Psalms: {"Псалтирь"},
		canon.Proverbs: {"Притчи"},
		canon.Ecclesiastes: {"Екклесиаст"},
		canon.SongOfSolomon: {"Песнь Песней"},
		canon.Isaiah: {"Исаия"},
		canon.Jeremiah: {"Иеремия"},
		canon.Lamentations: {"Плач Иеремии"},
		canon.Ezekiel: {"Иезекииль"},
		canon.Daniel: {"Даниил"},
		canon.Hosea: {"Осия"},
		canon.Joel: {"Иоиль"},
		canon.Amos: {"Амос"},
		canon.Obadiah: {"Авдий"},
		canon.Jonah: {"Иона"},
		canon.Micah: {"Михей"},
		canon.Nahum: {"Наум"},
		canon.Habakkuk: {"Аввакум"},
		canon.Zephaniah: {"Софония"},
		canon.Haggai: {"Аггей"},
		canon.Zechariah: {"Захария"},
		canon.Malachi: {"Малахия"},
		canon.Matthew: {"От Матфея"},
		canon.Mark: {"От Марка"},
		canon.Luke: {"От Луки"},
		canon.John: {"От Иоанна"},
		canon.Acts: {"Деяния"},
		canon.Romans: {"Римлянам"},
		canon.FirstCorinthians: {"1 Коринфянам"},
		canon.SecondCorinthians: {"2 Коринфянам"},
		canon.Galatians: {"Галатам"},
		canon.Ephesians: {"Ефесянам"},
		canon.Philippians: {"Филиппийцам"},
		canon.Colossians: {"Колоссянам"},
		canon.FirstThessalonians: {"1 Фессалоникийцам"},
		canon.SecondThessalonians: {"2 Фессалоникийцам"},
		canon.FirstTimothy: {"1 Тимофею"},
		canon.SecondTimothy: {"2 Тимофею"},
		canon.Titus: {"Титу"},
		canon.Philemon: {"Филимону"},
		canon.Hebrews: {"Евреям"},
		canon.James: {"Иакова"},
		canon.FirstPeter: {"1 Петра"},
		canon.SecondPeter: {"2 Петра"},
		canon.FirstJohn: {"1 Иоанна"},
		canon.SecondJohn: {"2 Иоанна"},
		canon.ThirdJohn: {"3 Иоанна"},
		canon.Jude: {"Иуды"},
		canon.Revelation: {"Откровение"},
	},
	Short: map[canon.Book][]string{
		canon.Genesis: {"Быт"},
		canon.Exodus: {"Исх"},
		canon.Leviticus: {"Лев"},
		canon.Numbers: {"Чис"},
		canon.Deuteronomy: {"Втор"},
		canon.Joshua: {"Нав"},
		canon.Judges: {"Суд"},
		canon.Ruth: {"Руф"},
		canon.FirstSamuel: {"1Цар"},
		canon.SecondSamuel: {"2Цар"},
		canon.FirstKings: {"3Цар"},
		canon.SecondKings: {"4Цар"},
		canon.FirstChronicles: {"1Пар"},
		canon.SecondChronicles: {"2Пар"},
		canon.Ezra: {"Езд"},
		canon.Nehemiah: {"Неем"},
		canon.Esther: {"Есф"},
		canon.Job: {"Иов"},
		canon.Psalms: {"Пс"},
		canon.Proverbs: {"Прит"},
		canon.Ecclesiastes: {"Еккл"},
		canon.SongOfSolomon: {"Песн"},
		canon.Isaiah: {"Ис"},
		canon.Jeremiah: {"Иер"},
		canon.Lamentations: {"Плч"},
		canon.Ezekiel: {"Иез"},
		canon.Daniel: {"Дан"},
		canon.Hosea: {"Ос"},
		canon.Joel: {"Иоил"},
		canon.Amos: {"Ам"},
		canon.Obadiah: {"Авд"},
		canon.Jonah: {"Ион"},
		canon.Micah: {"Мих"},
		canon.Nahum: {"Наум"},
		canon.Habakkuk: {"Авв"},
		canon.Zephaniah: {"Соф"},
		canon.Haggai: {"Агг"},
		canon.Zechariah: {"Зах"},
		canon.Malachi: {"Мал"},
		canon.Matthew: {"Мф"},
		canon.Mark: {"Мк"},
		canon.Luke: {"Лк"},
		canon.John: {"Ин"},
		canon.Acts: {"Деян"},
		canon.Romans: {"Рим"},
		canon.FirstCorinthians: {"1Кор"},
		canon.SecondCorinthians: {"2Кор"},
		canon.Galatians: {"Гал"},
		canon.Ephesians: {"Еф"},
		canon.Philippians: {"Флп"},
		canon.Colossians: {"Кол"},
		canon.FirstThessalonians: {"1Фес"},
		canon.SecondThessalonians: {"2Фес"},
		canon.FirstTimothy: {"1Тим"},
		canon.SecondTimothy: {"2Тим"},
		canon.Titus: {"Тит"},
		canon.Philemon: {"Флм"},
		canon.Hebrews: {"Евр"},
		canon.James: {"Иак"},
		canon.FirstPeter: {"1Пет"},
		canon.SecondPeter: {"2Пет"},
		canon.FirstJohn: {"1Ин"},
		canon.SecondJohn: {"2Ин"},
		canon.ThirdJohn: {"3Ин"},
		canon.Jude: {"Иуд"},
		canon.Revelation: {"Откр"},
	},
	ChapterVerseSeps: []string{":", ","},
	RangeSeps:        rangeSeps,
	SpaceAfterBook:   true,
}
