package bot

// Canned bot replies. Placeholders are filled with fmt.Sprintf.

const welcomeMessage = `🚀 Welcome to the $OVO Airdrop Bot! 🚀

This bot allows you to register your Solana wallet address to receive SPL token airdrops.

Commands:
/register <wallet_address> - Register your Solana wallet
/wallet - Check your registered wallet
/help - Show this help message

Alternatively, you can simply send your Solana wallet address.`

const helpMessage = `🔍 Solana Airdrop Bot Commands:

/register <wallet_address> - Register your Solana wallet
/wallet - Check your registered wallet
/help - Show this help message

For admins only:
/airdrop - Trigger an airdrop to all registered wallets

You can also register by simply sending your Solana wallet address.`

const registerUsage = `Please provide your Solana wallet address.

Example: /register AiLH3qLGw9HVhQrQbZ82KGAY8tLnCyi8nG3LqAVMYwp4`

const registerSuccess = `✅ Wallet registered successfully!

%s

You will be notified when airdrops occur.`

const registerInvalid = `❌ Invalid Solana wallet address. Please check and try again.`

const registerAlreadyExists = `⚠️ This wallet is already registered for you.`

const walletDisplay = `Your registered wallet address:

%s`

const walletMultiple = `Your registered wallet addresses:

%s`

const walletNone = `You don't have a registered wallet address yet.

Use /register <wallet_address> to register your wallet.`

const walletError = `Unable to retrieve your wallet addresses. Please try again later.`

const adminOnly = `❌ This command is only available to admins.`

const airdropUsage = `Admin command format:

/airdrop <token_mint_address> <amount> <decimals>

Example: /airdrop 7d7jZLzHHefeSDqJj9EJhTrA1Ujmsb3saxs5vPdtpump 10 0`

const airdropInvalidArgs = `Invalid arguments. Amount must be a number and decimals an integer.`

const airdropNoSender = `❌ Sender wallet not configured. Please set the SENDER_SECRET_KEY environment variable.`

const airdropNoWallets = `❌ No wallets registered for airdrop.`

const airdropStarted = `✅ Started airdrop of %v tokens to %d wallets.
Processing in background...`

const genericError = `❌ An error occurred: %s`

const unrecognizedMessage = `I didn't understand that message. Try using one of these commands:

/help - Show available commands
/register <wallet_address> - Register your wallet
/wallet - View your registered wallet`

// commonResponses answers exact-match small talk.
var commonResponses = map[string]string{
	"hello":     "👋 Hello! How can I help you today?",
	"hi":        "👋 Hi there! Need help with Solana airdrops?",
	"thanks":    "You're welcome! 😊",
	"thank you": "You're welcome! 😊",
	"airdrop":   "To participate in airdrops, use /register <wallet_address> to register your Solana wallet.",
	"when":      "Airdrops are scheduled by the admin. You'll be notified when one is available.",
	"how":       "Just register your wallet with /register <wallet_address> and you'll be eligible for future airdrops!",
	"token":     "We're distributing SPL tokens on the Solana blockchain. Register your wallet to participate!",
}

type keywordIntent struct {
	intent   string
	keywords []string
}

// keywordIntents maps message keywords to an intent. Order matters: the
// first intent with a matching keyword wins.
var keywordIntents = []keywordIntent{
	{"wallet", []string{"wallet", "address", "key", "solana address"}},
	{"airdrop", []string{"airdrop", "drop", "free", "token", "giveaway"}},
	{"help", []string{"help", "assist", "support", "command", "how"}},
	{"greeting", []string{"hello", "hi", "hey", "greetings", "good day", "howdy"}},
	{"thanks", []string{"thanks", "thank you", "appreciate", "grateful"}},
	{"when", []string{"when", "date", "schedule", "time", "receive"}},
	{"info", []string{"what", "info", "about", "explain", "tell me"}},
}
