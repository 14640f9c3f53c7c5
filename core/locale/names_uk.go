package locale

import "github.com/FocuswithJustin/Versicle/core/canon"

// ukrainian carries the built-in Ukrainian names.
var ukrainian = &Language{
	Code: "uk",
	Long: map[canon.Book][]string{
		canon.Genesis: {"Буття"},
		canon.Exodus: {"Вихід"},
		canon.Leviticus: {"Левит"},
		canon.Numbers: {"Числа"},
		canon.Deuteronomy: {"Повторення Закону"},
		canon.Joshua: {"Ісус Навин"},
		canon.Judges: {"Судді"},
		canon.Ruth: {"Рут"},
		canon.FirstSamuel: {"1 Самуїла"},
		canon.SecondSamuel: {"2 Самуїла"},
		canon.FirstKings: {"1 Царів"},
		canon.SecondKings: {"2 Царів"},
		canon.FirstChronicles: {"1 Хронік"},
		canon.SecondChronicles: {"2 Хронік"},
		canon.Ezra: {"Ездра"},
		canon.Nehemiah: {"Неемія"},
		canon.Esther: {"Естер"},
		canon.Job: {"Йов"},
		canon.Psalms: {"Псалми"},
		canon.Proverbs: {"Приповісті"},
		canon.Ecclesiastes: {"Екклезіяст"},
		canon.SongOfSolomon: {"Пісня Пісень"},
		canon.Isaiah: {"Ісая"},
		canon.Jeremiah: {"Єремія"},
		canon.Lamentations: {"Плач Єремії"},
		canon.Ezekiel: {"Єзекіїль"},
		canon.Daniel: {"Даниїл"},
		canon.Hosea: {"Осія"},
		canon.Joel: {"Йоіл"},
		canon.Amos: {"Амос"},
		canon.Obadiah: {"Овдій"},
		canon.Jonah: {"Йона"},
		canon.Micah: {"Михей"},
		canon.Nahum: {"Наум"},
		canon.Habakkuk: {"Авакум"},
		canon.Zephaniah: {"Софонія"},
		canon.Haggai: {"Огій"},
		canon.Zechariah: {"Захарія"},
		canon.Malachi: {"Малахія"},
		canon.Matthew: {"Від Матвія"},
		canon.Mark: {"Від Марка"},
		canon.Luke: {"Від Луки"},
		canon.John: {"Від Івана"},
		canon.Acts: {"Дії"},
		canon.Romans: {"До Римлян"},
		canon.FirstCorinthians: {"1 До Коринтян"},
		canon.SecondCorinthians: {"2 До Коринтян"},
		canon.Galatians: {"До Галатів"},
		canon.Ephesians: {"До Ефесян"},
		canon.Philippians: {"До Филип’ян"},
		canon.Colossians: {"До Колоссян"},
		canon.FirstThessalonians: {"1 До Солунян"},
		canon.SecondThessalonians: {"2 До Солунян"},
		canon.FirstTimothy: {"1 До Тимофія"},
		canon.SecondTimothy: {"2 До Тимофія"},
		canon.Titus: {"До Тита"},
		canon.Philemon: {"До Филимона"},
		canon.Hebrews: {"До Євреїв"},
		canon.James: {"Якова"},
		canon.FirstPeter: {"1 Петра"},
		canon.SecondPeter: {"2 Петра"},
		canon.FirstJohn: {"1 Івана"},
		canon.SecondJohn: {"2 Івана"},
		canon.ThirdJohn: {"3 Івана"},
		canon.Jude: {"Юди"},
		canon.Revelation: {"Об’явлення"},
	},
	Short: map[canon.Book][]string{
		canon.Genesis: {"Бут"},
		canon.Exodus: {"Вих"},
		canon.Leviticus: {"Лев"},
		canon.Numbers: {"Чис"},
		canon.Deuteronomy: {"Повт"},
		canon.Joshua: {"Нав"},
		canon.Judges: {"Суд"},
		canon.Ruth: {"Рут"},
		canon.FirstSamuel: {"1Сам"},
		canon.SecondSamuel: {"2Сам"},
		canon.FirstKings: {"1Цар"},
		canon.SecondKings: {"2Цар"},
		canon.FirstChronicles: {"1Хр"},
		canon.SecondChronicles: {"2Хр"},
		canon.Ezra: {"Езд"},
		canon.Nehemiah: {"Неем"},
		canon.Esther: {"Ест"},
		canon.Job: {"Йов"},
		canon.Psalms: {"Пс"},
		canon.Proverbs: {"Прип"},
		canon.Ecclesiastes: {"Еккл"},
		canon.SongOfSolomon: {"Пісн"},
		canon.Isaiah: {"Іс"},
		canon.Jeremiah: {"Єр"},
		canon.Lamentations: {"ПлЄ"},
		canon.Ezekiel: {"Єз"},
		canon.Daniel: {"Дан"},
		canon.Hosea: {"Ос"},
		canon.Joel: {"Йоіл"},
		canon.Amos: {"Ам"},
		canon.Obadiah: {"Овд"},
		canon.Jonah: {"Йон"},
		canon.Micah: {"Мих"},
		canon.Nahum: {"Наум"},
		canon.Habakkuk: {"Ав"},
		canon.Zephaniah: {"Соф"},
		canon.Haggai: {"Ог"},
		canon.Zechariah: {"Зах"},
		canon.Malachi: {"Мал"},
		canon.Matthew: {"Мт"},
		canon.Mark: {"Мр"},
		canon.Luke: {"Лк"},
		canon.John: {"Ів"},
		canon.Acts: {"Дії"},
		canon.Romans: {"Рим"},
		canon.FirstCorinthians: {"1Кор"},
		canon.SecondCorinthians: {"2Кор"},
		canon.Galatians: {"Гал"},
		canon.Ephesians: {"Еф"},
		canon.Philippians: {"Флп"},
		canon.Colossians: {"Кол"},
		canon.FirstThessalonians: {"1Сол"},
		canon.SecondThessalonians: {"2Сол"},
		canon.FirstTimothy: {"1Тим"},
		canon.SecondTimothy: {"2Тим"},
		canon.Titus: {"Тит"},
		canon.Philemon: {"Флм"},
		canon.Hebrews: {"Євр"},
		canon.James: {"Як"},
		canon.FirstPeter: {"1Пет"},
		canon.SecondPeter: {"2Пет"},
		canon.FirstJohn: {"1Ів"},
		canon.SecondJohn: {"2Ів"},
		canon.ThirdJohn: {"3Ів"},
		canon.Jude: {"Юд"},
		canon.Revelation: {"Об"},
	},
	ChapterVerseSeps: []string{":", ","},
	RangeSeps:        rangeSeps,
	SpaceAfterBook:   true,
}
