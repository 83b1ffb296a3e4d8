package hangman

// wordlist holds the built-in words. All lowercase ASCII; the difficulty
// filters in wordsFor rely on word length and the rare letters below.
var wordlist = []string{
	"apple", "banana", "computer", "printer", "elephant", "window", "garden",
	"coffee", "light", "milk", "nature", "brush", "rose", "shoe", "table",
	"vase", "cloud", "zebra", "pineapple", "tree", "diamond", "earth",
	"family", "mountain", "heaven", "internet", "map", "lemonade", "music",
	"north", "paper", "radio", "juice", "stairs", "universe", "weather",
	"yacht", "train", "flower", "thunder", "moose", "fire", "violin",
	"honey", "yogurt", "cake", "ladder", "moon", "fog", "fruit", "palm",
	"rocket", "salad", "spruce", "shore", "wind", "fence", "eagle", "pear",
	"can", "lizard", "frog", "giraffe", "shark", "insect", "camel",
	"leopard", "seashell", "hippo", "horse", "rat", "snake", "tiger",
	"whale", "goat", "squirrel", "xylophone", "zeppelin", "vineyard",
	"junction", "zucchini", "quartz", "jukebox", "vortex", "journey",
	"horizon", "pyramid", "volcano", "mystery", "equation", "gravity",
}

// rareHard are the letters that push a word into the hard pool.
const rareHard = "qxyvjpz"

// rareExpert is the stricter set used for the expert pool.
const rareExpert = "qxyvjz"
