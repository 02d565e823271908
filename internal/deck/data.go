package deck

// Embedded deck data. The kana decks cover the 46 base gojūon glyphs; vocab
// is a starter set of common words.

var hiragana = Deck{
	ID:   "hiragana",
	Name: "Hiragana",
	Cards: []Card{
		{Prompt: "あ", Answer: "a"}, {Prompt: "い", Answer: "i"}, {Prompt: "う", Answer: "u"},
		{Prompt: "え", Answer: "e"}, {Prompt: "お", Answer: "o"},
		{Prompt: "か", Answer: "ka"}, {Prompt: "き", Answer: "ki"}, {Prompt: "く", Answer: "ku"},
		{Prompt: "け", Answer: "ke"}, {Prompt: "こ", Answer: "ko"},
		{Prompt: "さ", Answer: "sa"}, {Prompt: "し", Answer: "shi", Alt: []string{"si"}},
		{Prompt: "す", Answer: "su"}, {Prompt: "せ", Answer: "se"}, {Prompt: "そ", Answer: "so"},
		{Prompt: "た", Answer: "ta"}, {Prompt: "ち", Answer: "chi", Alt: []string{"ti"}},
		{Prompt: "つ", Answer: "tsu", Alt: []string{"tu"}},
		{Prompt: "て", Answer: "te"}, {Prompt: "と", Answer: "to"},
		{Prompt: "な", Answer: "na"}, {Prompt: "に", Answer: "ni"}, {Prompt: "ぬ", Answer: "nu"},
		{Prompt: "ね", Answer: "ne"}, {Prompt: "の", Answer: "no"},
		{Prompt: "は", Answer: "ha"}, {Prompt: "ひ", Answer: "hi"},
		{Prompt: "ふ", Answer: "fu", Alt: []string{"hu"}},
		{Prompt: "へ", Answer: "he"}, {Prompt: "ほ", Answer: "ho"},
		{Prompt: "ま", Answer: "ma"}, {Prompt: "み", Answer: "mi"}, {Prompt: "む", Answer: "mu"},
		{Prompt: "め", Answer: "me"}, {Prompt: "も", Answer: "mo"},
		{Prompt: "や", Answer: "ya"}, {Prompt: "ゆ", Answer: "yu"}, {Prompt: "よ", Answer: "yo"},
		{Prompt: "ら", Answer: "ra"}, {Prompt: "り", Answer: "ri"}, {Prompt: "る", Answer: "ru"},
		{Prompt: "れ", Answer: "re"}, {Prompt: "ろ", Answer: "ro"},
		{Prompt: "わ", Answer: "wa"}, {Prompt: "を", Answer: "wo", Alt: []string{"o"}},
		{Prompt: "ん", Answer: "n"},
	},
}

var katakana = Deck{
	ID:   "katakana",
	Name: "Katakana",
	Cards: []Card{
		{Prompt: "ア", Answer: "a"}, {Prompt: "イ", Answer: "i"}, {Prompt: "ウ", Answer: "u"},
		{Prompt: "エ", Answer: "e"}, {Prompt: "オ", Answer: "o"},
		{Prompt: "カ", Answer: "ka"}, {Prompt: "キ", Answer: "ki"}, {Prompt: "ク", Answer: "ku"},
		{Prompt: "ケ", Answer: "ke"}, {Prompt: "コ", Answer: "ko"},
		{Prompt: "サ", Answer: "sa"}, {Prompt: "シ", Answer: "shi", Alt: []string{"si"}},
		{Prompt: "ス", Answer: "su"}, {Prompt: "セ", Answer: "se"}, {Prompt: "ソ", Answer: "so"},
		{Prompt: "タ", Answer: "ta"}, {Prompt: "チ", Answer: "chi", Alt: []string{"ti"}},
		{Prompt: "ツ", Answer: "tsu", Alt: []string{"tu"}},
		{Prompt: "テ", Answer: "te"}, {Prompt: "ト", Answer: "to"},
		{Prompt: "ナ", Answer: "na"}, {Prompt: "ニ", Answer: "ni"}, {Prompt: "ヌ", Answer: "nu"},
		{Prompt: "ネ", Answer: "ne"}, {Prompt: "ノ", Answer: "no"},
		{Prompt: "ハ", Answer: "ha"}, {Prompt: "ヒ", Answer: "hi"},
		{Prompt: "フ", Answer: "fu", Alt: []string{"hu"}},
		{Prompt: "ヘ", Answer: "he"}, {Prompt: "ホ", Answer: "ho"},
		{Prompt: "マ", Answer: "ma"}, {Prompt: "ミ", Answer: "mi"}, {Prompt: "ム", Answer: "mu"},
		{Prompt: "メ", Answer: "me"}, {Prompt: "モ", Answer: "mo"},
		{Prompt: "ヤ", Answer: "ya"}, {Prompt: "ユ", Answer: "yu"}, {Prompt: "ヨ", Answer: "yo"},
		{Prompt: "ラ", Answer: "ra"}, {Prompt: "リ", Answer: "ri"}, {Prompt: "ル", Answer: "ru"},
		{Prompt: "レ", Answer: "re"}, {Prompt: "ロ", Answer: "ro"},
		{Prompt: "ワ", Answer: "wa"}, {Prompt: "ヲ", Answer: "wo", Alt: []string{"o"}},
		{Prompt: "ン", Answer: "n"},
	},
}

var vocab = Deck{
	ID:   "vocab",
	Name: "Vocabulary",
	Cards: []Card{
		{Prompt: "水", Answer: "water", Alt: []string{"mizu"}},
		{Prompt: "火", Answer: "fire", Alt: []string{"hi"}},
		{Prompt: "山", Answer: "mountain", Alt: []string{"yama"}},
		{Prompt: "川", Answer: "river", Alt: []string{"kawa"}},
		{Prompt: "日", Answer: "sun", Alt: []string{"day", "hi", "nichi"}},
		{Prompt: "月", Answer: "moon", Alt: []string{"month", "tsuki"}},
		{Prompt: "人", Answer: "person", Alt: []string{"hito"}},
		{Prompt: "本", Answer: "book", Alt: []string{"hon"}},
		{Prompt: "犬", Answer: "dog", Alt: []string{"inu"}},
		{Prompt: "猫", Answer: "cat", Alt: []string{"neko"}},
		{Prompt: "食べる", Answer: "to eat", Alt: []string{"eat", "taberu"}},
		{Prompt: "飲む", Answer: "to drink", Alt: []string{"drink", "nomu"}},
		{Prompt: "行く", Answer: "to go", Alt: []string{"go", "iku"}},
		{Prompt: "見る", Answer: "to see", Alt: []string{"see", "miru"}},
		{Prompt: "大きい", Answer: "big", Alt: []string{"ookii"}},
		{Prompt: "小さい", Answer: "small", Alt: []string{"chiisai"}},
		{Prompt: "新しい", Answer: "new", Alt: []string{"atarashii"}},
		{Prompt: "古い", Answer: "old", Alt: []string{"furui"}},
		{Prompt: "学校", Answer: "school", Alt: []string{"gakkou", "gakko"}},
		{Prompt: "先生", Answer: "teacher", Alt: []string{"sensei"}},
	},
}
