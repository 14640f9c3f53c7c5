package locale

import "github.com/FocuswithJustin/Versicle/core/canon"

// chineseSimplified carries the built-in simplified Chinese names. Chinese uses the fullwidth colon and no space after the book name.
var chineseSimplified = &Language{
	Code: "zh_sim",
	Long: map[canon.Book][]string{
		canon.Genesis: {"创世记"},
		canon.Exodus: {"出埃及记"},
		canon.Leviticus: {"利未记"},
		canon.Numbers: {"民数记"},
		canon.Deuteronomy: {"申命记"},
		canon.Joshua: {"约书亚记"},
		canon.Judges: {"士师记"},
		canon.Ruth: {"路得记"},
		canon.FirstSamuel: {"撒母耳记上"},
		canon.SecondSamuel: {"撒母耳记下"},
		canon.FirstKings: {"列王纪上"},
		canon.SecondKings: {"列王纪下"},
		canon.FirstChronicles: {"历代志上"},
		canon.SecondChronicles: {"历代志下"},
		canon.Ezra: {"以斯拉记"},
		canon.Nehemiah: {"尼希米记"},
		canon.Esther: {"以斯帖记"},
		canon.Job: {"约伯记"},
		canon.Psalms: {"诗篇"},
		canon.Proverbs: {"箴言"},
		canon.Ecclesiastes: {"传道书"},
		canon.SongOfSolomon: {"雅歌"},
		canon.Isaiah: {"以赛亚书"},
		canon.Jeremiah: {"耶利米书"},
		canon.Lamentations: {"耶利米哀歌"},
		canon.Ezekiel: {"以西结书"},
		canon.Daniel: {"但以理书"},
		canon.Hosea: {"何西阿书"},
		canon.Joel: {"约珥书"},
		canon.Amos: {"阿摩司书"},
		canon.Obadiah: {"俄巴底亚书"},
		canon.Jonah: {"约拿书"},
		canon.Micah: {"弥迦书"},
		canon.Nahum: {"那鸿书"},
		canon.Habakkuk: {"哈巴谷书"},
		canon.Zephaniah: {"西番雅书"},
		canon.Haggai: {"哈该书"},
		canon.Zechariah: {"撒迦利亚书"},
		canon.Malachi: {"玛拉基书"},
		canon.Matthew: {"马太福音"},
		canon.Mark: {"马可福音"},
		canon.Luke: {"路加福音"},
		canon.John: {"约翰福音"},
		canon.Acts: {"使徒行传"},
		canon.Romans: {"罗马书"},
		canon.FirstCorinthians: {"哥林多前书"},
		canon.SecondCorinthians: {"哥林多后书"},
		canon.Galatians: {"加拉太书"},
		canon.Ephesians: {"以弗所书"},
		canon.Philippians: {"腓立比书"},
		canon.Colossians: {"歌罗西书"},
		canon.FirstThessalonians: {"帖撒罗尼迦前书"},
		canon.SecondThessalonians: {"帖撒罗尼迦后书"},
		canon.FirstTimothy: {"提摩太前书"},
		canon.SecondTimothy: {"提摩太后书"},
		canon.Titus: {"提多书"},
		canon.Philemon: {"腓利门书"},
		canon.Hebrews: {"希伯来书"},
		canon.James: {"雅各书"},
		canon.FirstPeter: {"彼得前书"},
		canon.SecondPeter: {"彼得后书"},
		canon.FirstJohn: {"约翰一书"},
		canon.SecondJohn: {"约翰二书"},
		canon.ThirdJohn: {"约翰三书"},
		canon.Jude: {"犹大书"},
		canon.Revelation: {"启示录"},
	},
	Short: map[canon.Book][]string{
		canon.Genesis: {"创"},
		canon.Exodus: {"出"},
		canon.Leviticus: {"利"},
		canon.Numbers: {"民"},
		canon.Deuteronomy: {"申"},
		canon.Joshua: {"书"},
		canon.Judges: {"士"},
		canon.Ruth: {"得"},
		canon.FirstSamuel: {"撒上"},
		canon.SecondSamuel: {"撒下"},
		canon.FirstKings: {"王上"},
		canon.SecondKings: {"王下"},
		canon.FirstChronicles: {"代上"},
		canon.SecondChronicles: {"代下"},
		canon.Ezra: {"拉"},
		canon.Nehemiah: {"尼"},
		canon.Esther: {"斯"},
		canon.Job: {"伯"},
		canon.Psalms: {"诗", "诗篇"},
		canon.Proverbs: {"箴"},
		canon.Ecclesiastes: {"传"},
		canon.SongOfSolomon: {"歌"},
		canon.Isaiah: {"赛"},
		canon.Jeremiah: {"耶"},
		canon.Lamentations: {"哀"},
		canon.Ezekiel: {"结"},
		canon.Daniel: {"但"},
		canon.Hosea: {"何"},
		canon.Joel: {"珥"},
		canon.Amos: {"摩"},
		canon.Obadiah: {"俄"},
		canon.Jonah: {"拿"},
		canon.Micah: {"弥"},
		canon.Nahum: {"鸿"},
		canon.Habakkuk: {"哈"},
		canon.Zephaniah: {"番"},
		canon.Haggai: {"该"},
		canon.Zechariah: {"亚"},
		canon.Malachi: {"玛"},
		canon.Matthew: {"太"},
		canon.Mark: {"可"},
		canon.Luke: {"路"},
		canon.John: {"约"},
		canon.Acts: {"徒"},
		canon.Romans: {"罗"},
		canon.FirstCorinthians: {"林前"},
		canon.SecondCorinthians: {"林后"},
		canon.Galatians: {"加"},
		canon.Ephesians: {"弗"},
		canon.Philippians: {"腓"},
		canon.Colossians: {"西"},
		canon.FirstThessalonians: {"帖前"},
		canon.SecondThessalonians: {"帖后"},
		canon.FirstTimothy: {"提前"},
		canon.SecondTimothy: {"提后"},
		canon.Titus: {"多"},
		canon.Philemon: {"门"},
		canon.Hebrews: {"来"},
		canon.James: {"雅"},
		canon.FirstPeter: {"彼前"},
		canon.SecondPeter: {"彼后"},
		canon.FirstJohn: {"约一"},
		canon.SecondJohn: {"约二"},
		canon.ThirdJohn: {"约三"},
		canon.Jude: {"犹"},
		canon.Revelation: {"启"},
	},
	ChapterVerseSeps: []string{"："},
	RangeSeps:        rangeSeps,
	SpaceAfterBook:   false,
}

// chineseTraditional carries the built-in traditional Chinese names.
var chineseTraditional = &Language{
	Code: "zh_trad",
	Long: map[canon.Book][]string{
		canon.Genesis: {"創世記"},
		canon.Exodus: {"出埃及記"},
		canon.Leviticus: {"利未記"},
		canon.Numbers: {"民數記"},
		canon.Deuteronomy: {"申命記"},
		canon.Joshua: {"約書亞記"},
		canon.Judges: {"士師記"},
		canon.Ruth: {"路得記"},
		canon.FirstSamuel: {"撒母耳記上"},
		canon.SecondSamuel: {"撒母耳記下"},
		canon.FirstKings: {"列王紀上"},
		canon.SecondKings: {"列王紀下"},
		canon.FirstChronicles: {"歷代志上"},
		canon.SecondChronicles: {"歷代志下"},
		canon.Ezra: {"以斯拉記"},
		canon.Nehemiah: {"尼希米記"},
		canon.Esther: {"以斯帖記"},
		canon.Job: {"約伯記"},
		canon.Psalms: {"詩篇"},
		canon.Proverbs: {"箴言"},
		canon.Ecclesiastes: {"傳道書"},
		canon.SongOfSolomon: {"雅歌"},
		canon.Isaiah: {"以賽亞書"},
		canon.Jeremiah: {"耶利米書"},
		canon.Lamentations: {"耶利米哀歌"},
		canon.Ezekiel: {"以西結書"},
		canon.Daniel: {"但以理書"},
		canon.Hosea: {"何西阿書"},
		canon.Joel: {"約珥書"},
		canon.Amos: {"阿摩司書"},
		canon.Obadiah: {"俄巴底亞書"},
		canon.Jonah: {"約拿書"},
		canon.Micah: {"彌迦書"},
		canon.Nahum: {"那鴻書"},
		canon.Habakkuk: {"哈巴谷書"},
		canon.Zephaniah: {"西番雅書"},
		canon.Haggai: {"哈該書"},
		canon.Zechariah: {"撒迦利亞書"},
		canon.Malachi: {"瑪拉基書"},
		canon.Matthew: {"馬太福音"},
		canon.Mark: {"馬可福音"},
		canon.Luke: {"路加福音"},
		canon.John: {"約翰福音"},
		canon.Acts: {"使徒行傳"},
		canon.Romans: {"羅馬書"},
		canon.FirstCorinthians: {"哥林多前書"},
		canon.SecondCorinthians: {"哥林多後書"},
		canon.Galatians: {"加拉太書"},
		canon.Ephesians: {"以弗所書"},
		canon.Philippians: {"腓立比書"},
		canon.Colossians: {"歌羅西書"},
		canon.FirstThessalonians: {"帖撒羅尼迦前書"},
		canon.SecondThessalonians: {"帖撒羅尼迦後書"},
		canon.FirstTimothy: {"提摩太前書"},
		canon.SecondTimothy: {"提摩太後書"},
		canon.Titus: {"提多書"},
		canon.Philemon: {"腓利門書"},
		canon.Hebrews: {"希伯來書"},
		canon.James: {"雅各書"},
		canon.FirstPeter: {"彼得前書"},
		canon.SecondPeter: {"彼得後書"},
		canon.FirstJohn: {"約翰一書"},
		canon.SecondJohn: {"約翰二書"},
		canon.ThirdJohn: {"約翰三書"},
		canon.Jude: {"猶大書"},
		canon.Revelation: {"啟示錄"},
	},
	Short: map[canon.Book][]string{
		canon.Genesis: {"創"},
		canon.Exodus: {"出"},
		canon.Leviticus: {"利"},
		canon.Numbers: {"民"},
		canon.Deuteronomy: {"申"},
		canon.Joshua: {"書"},
		canon.Judges: {"士"},
		canon.Ruth: {"得"},
		canon.FirstSamuel: {"撒上"},
		canon.SecondSamuel: {"撒下"},
		canon.FirstKings: {"王上"},
		canon.SecondKings: {"王下"},
		canon.FirstChronicles: {"代上"},
		canon.SecondChronicles: {"代下"},
		canon.Ezra: {"拉"},
		canon.Nehemiah: {"尼"},
		canon.Esther: {"斯"},
		canon.Job: {"伯"},
		canon.Psalms: {"詩"},
		canon.Proverbs: {"箴"},
		canon.Ecclesiastes: {"傳"},
		canon.SongOfSolomon: {"歌"},
		canon.Isaiah: {"賽"},
		canon.Jeremiah: {"耶"},
		canon.Lamentations: {"哀"},
		canon.Ezekiel: {"結"},
		canon.Daniel: {"但"},
		canon.Hosea: {"何"},
		canon.Joel: {"珥"},
		canon.Amos: {"摩"},
		canon.Obadiah: {"俄"},
		canon.Jonah: {"拿"},
		canon.Micah: {"彌"},
		canon.Nahum: {"鴻"},
		canon.Habakkuk: {"哈"},
		canon.Zephaniah: {"番"},
		canon.Haggai: {"該"},
		canon.Zechariah: {"亞"},
		canon.Malachi: {"瑪"},
		canon.Matthew: {"太"},
		canon.Mark: {"可"},
		canon.Luke: {"路"},
		canon.John: {"約"},
		canon.Acts: {"徒"},
		canon.Romans: {"羅"},
		canon.FirstCorinthians: {"林前"},
		canon.SecondCorinthians: {"林後"},
		canon.Galatians: {"加"},
		canon.Ephesians: {"弗"},
		canon.Philippians: {"腓"},
		canon.Colossians: {"西"},
		canon.FirstThessalonians: {"帖前"},
		canon.SecondThessalonians: {"帖後"},
		canon.FirstTimothy: {"提前"},
		canon.SecondTimothy: {"提後"},
		canon.Titus: {"多"},
		canon.Philemon: {"門"},
		canon.Hebrews: {"來"},
		canon.James: {"雅"},
		canon.FirstPeter: {"彼前"},
		canon.SecondPeter: {"彼後"},
		canon.FirstJohn: {"約一"},
		canon.SecondJohn: {"約二"},
		canon.ThirdJohn: {"約三"},
		canon.Jude: {"猶"},
		canon.Revelation: {"啟"},
	},
	ChapterVerseSeps: []string{"："},
	RangeSeps:        rangeSeps,
	SpaceAfterBook:   false,
}
