package constants

const USER_AGENT = "bmlookup/0.1.0 (+https://github.com/Amund211/battlemetrics)"

const BATTLEMETRICS_API_BASE_URL = "https://api.battlemetrics.com"
