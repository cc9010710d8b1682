// Package model holds the typed response records the Facade hands back to
// callers once it has parsed the opaque JSON bodies returned by the
// driver. The core components (signer, transport, session pool, driver,
// batch planner) never import this package — to them every response body
// is just a string.
package model

// CreateSessionReply is the single JSON object returned by createsession.
type CreateSessionReply struct {
	RetMsg    *string `json:"ret_msg"`
	SessionID *string `json:"session_id"`
	Timestamp *string `json:"timestamp"`
}

// MatchIDRecord is one element of a getmatchidsbyqueue reply array.
type MatchIDRecord struct {
	RetMsg     *string `json:"ret_msg"`
	ActiveFlag *string `json:"Active_Flag"`
	Match      *string `json:"Match"`
}

// MergedPlayer describes an account-merge record embedded in match details.
type MergedPlayer struct {
	MergeDatetime string `json:"merge_datetime"`
	PlayerID      string `json:"playerId"`
	PortalID      string `json:"portalId"`
}

// PlayerMatchDetails is one player-match row from getmatchdetails(batch).
// Field set mirrors the provider's full payload; nearly every field is
// optional because the provider omits fields per queue/game-mode.
type PlayerMatchDetails struct {
	AccountLevel         *int            `json:"Account_Level,omitempty"`
	ActiveID1             *int            `json:"ActiveId1,omitempty"`
	ActiveID2             *int            `json:"ActiveId2,omitempty"`
	ActiveID3             *int            `json:"ActiveId3,omitempty"`
	ActiveID4             *int            `json:"ActiveId4,omitempty"`
	ActivePlayerID         *string         `json:"ActivePlayerId,omitempty"`
	Assists               *int            `json:"Assists,omitempty"`
	Ban1                  *string         `json:"Ban1,omitempty"`
	Ban1ID                *int            `json:"Ban1Id,omitempty"`
	Ban2                  *string         `json:"Ban2,omitempty"`
	Ban2ID                *int            `json:"Ban2Id,omitempty"`
	Ban3                  *string         `json:"Ban3,omitempty"`
	Ban3ID                *int            `json:"Ban3Id,omitempty"`
	Ban4                  *string         `json:"Ban4,omitempty"`
	Ban4ID                *int            `json:"Ban4Id,omitempty"`
	CampsCleared          *int            `json:"Camps_Cleared,omitempty"`
	ConquestLosses        *int            `json:"Conquest_Losses,omitempty"`
	ConquestPoints        *int            `json:"Conquest_Points,omitempty"`
	ConquestTier          *int            `json:"Conquest_Tier,omitempty"`
	ConquestWins          *int            `json:"Conquest_Wins,omitempty"`
	DamageBot             *int            `json:"Damage_Bot,omitempty"`
	DamageDoneInHand      *int            `json:"Damage_Done_In_Hand,omitempty"`
	DamageDoneMagical     *int            `json:"Damage_Done_Magical,omitempty"`
	DamageDonePhysical    *int            `json:"Damage_Done_Physical,omitempty"`
	DamageMitigated       *int            `json:"Damage_Mitigated,omitempty"`
	DamagePlayer          *int            `json:"Damage_Player,omitempty"`
	DamageTaken           *int            `json:"Damage_Taken,omitempty"`
	DamageTakenMagical    *int            `json:"Damage_Taken_Magical,omitempty"`
	DamageTakenPhysical   *int            `json:"Damage_Taken_Physical,omitempty"`
	Deaths                *int            `json:"Deaths,omitempty"`
	DistanceTraveled      *int            `json:"Distance_Traveled,omitempty"`
	DuelLosses            *int            `json:"Duel_Losses,omitempty"`
	DuelPoints            *int            `json:"Duel_Points,omitempty"`
	DuelTier              *int            `json:"Duel_Tier,omitempty"`
	DuelWins              *int            `json:"Duel_Wins,omitempty"`
	EntryDatetime         *string         `json:"Entry_Datetime,omitempty"`
	FinalMatchLevel       *int            `json:"Final_Match_Level,omitempty"`
	FirstBanSide          *string         `json:"First_Ban_Side,omitempty"`
	GodID                 *int            `json:"GodId,omitempty"`
	GoldEarned            *int            `json:"Gold_Earned,omitempty"`
	GoldPerMinute         *int            `json:"Gold_Per_Minute,omitempty"`
	Healing               *int            `json:"Healing,omitempty"`
	HealingBot            *int            `json:"Healing_Bot,omitempty"`
	HealingPlayerSelf     *int            `json:"Healing_Player_Self,omitempty"`
	ItemID1               *int            `json:"ItemId1,omitempty"`
	ItemID2               *int            `json:"ItemId2,omitempty"`
	ItemID3               *int            `json:"ItemId3,omitempty"`
	ItemID4               *int            `json:"ItemId4,omitempty"`
	ItemID5               *int            `json:"ItemId5,omitempty"`
	ItemID6               *int            `json:"ItemId6,omitempty"`
	ItemPurch1            *string         `json:"Item_Purch_1,omitempty"`
	ItemPurch2            *string         `json:"Item_Purch_2,omitempty"`
	ItemPurch3            *string         `json:"Item_Purch_3,omitempty"`
	ItemPurch4            *string         `json:"Item_Purch_4,omitempty"`
	ItemPurch5            *string         `json:"Item_Purch_5,omitempty"`
	ItemPurch6            *string         `json:"Item_Purch_6,omitempty"`
	JoustLosses           *int            `json:"Joust_Losses,omitempty"`
	JoustPoints           *int            `json:"Joust_Points,omitempty"`
	JoustTier             *int            `json:"Joust_Tier,omitempty"`
	JoustWins             *int            `json:"Joust_Wins,omitempty"`
	KillingSpree          *int            `json:"Killing_Spree,omitempty"`
	KillsBot              *int            `json:"Kills_Bot,omitempty"`
	KillsDouble           *int            `json:"Kills_Double,omitempty"`
	KillsFireGiant        *int            `json:"Kills_Fire_Giant,omitempty"`
	KillsFirstBlood       *int            `json:"Kills_First_Blood,omitempty"`
	KillsGoldFury         *int            `json:"Kills_Gold_Fury,omitempty"`
	KillsPenta            *int            `json:"Kills_Penta,omitempty"`
	KillsPhoenix          *int            `json:"Kills_Phoenix,omitempty"`
	KillsPlayer           *int            `json:"Kills_Player,omitempty"`
	KillsQuadra           *int            `json:"Kills_Quadra,omitempty"`
	KillsSiegeJuggernaut  *int            `json:"Kills_Siege_Juggernaut,omitempty"`
	KillsSingle           *int            `json:"Kills_Single,omitempty"`
	KillsTriple           *int            `json:"Kills_Triple,omitempty"`
	KillsWildJuggernaut   *int            `json:"Kills_Wild_Juggernaut,omitempty"`
	MapGame               *string         `json:"Map_Game,omitempty"`
	MasteryLevel          *int            `json:"Mastery_Level,omitempty"`
	Match                 *int            `json:"Match,omitempty"`
	MatchDuration         *int64          `json:"Match_Duration,omitempty"`
	MergedPlayers         []MergedPlayer  `json:"MergedPlayers,omitempty"`
	Minutes               *int            `json:"Minutes,omitempty"`
	MultiKillMax          *int            `json:"Multi_kill_Max,omitempty"`
	ObjectiveAssists      *int            `json:"Objective_Assists,omitempty"`
	PartyID               *int            `json:"PartyId,omitempty"`
	RankStatConquest      *float32        `json:"Rank_Stat_Conquest,omitempty"`
	RankStatDuel          *float32        `json:"Rank_Stat_Duel,omitempty"`
	RankStatJoust         *float32        `json:"Rank_Stat_Joust,omitempty"`
	ReferenceName         *string         `json:"Reference_Name,omitempty"`
	Region                *string         `json:"Region,omitempty"`
	Skin                  *string         `json:"Skin,omitempty"`
	SkinID                *int            `json:"SkinId,omitempty"`
	StructureDamage       *int            `json:"Structure_Damage,omitempty"`
	Surrendered           *int            `json:"Surrendered,omitempty"`
	TaskForce             *int            `json:"TaskForce,omitempty"`
	Team1Score            *int64          `json:"Team1Score,omitempty"`
	Team2Score            *int64          `json:"Team2Score,omitempty"`
	TeamID                *int            `json:"TeamId,omitempty"`
	TeamName              *string         `json:"Team_Name,omitempty"`
	TimeInMatchSeconds    *int            `json:"Time_In_Match_Seconds,omitempty"`
	TowersDestroyed       *int            `json:"Towers_Destroyed,omitempty"`
	WardsPlaced           *int            `json:"Wards_Placed,omitempty"`
	WinStatus             *string         `json:"Win_Status,omitempty"`
	WinningTaskForce      *int            `json:"Winning_TaskForce,omitempty"`
	HasReplay             *string         `json:"hasReplay,omitempty"`
	HzGamerTag            *string         `json:"hz_gamer_tag,omitempty"`
	HzPlayerName          *string         `json:"hz_player_name,omitempty"`
	MatchQueueID          *int            `json:"match_queue_id,omitempty"`
	Name                  *string         `json:"name,omitempty"`
	PlayerID              *string         `json:"playerId,omitempty"`
	PlayerName            *string         `json:"playerName,omitempty"`
	PlayerPortalID        *string         `json:"playerPortalId,omitempty"`
	PlayerPortalUserID    *string         `json:"playerPortalUserId,omitempty"`
	RetMsg                *string         `json:"ret_msg,omitempty"`
}

// God is one entry of the getgods catalogue.
type God struct {
	ID   int    `json:"id"`
	Name string `json:"Name"`
}

// Item is one entry of the getitems catalogue.
type Item struct {
	ItemID     int    `json:"ItemId"`
	DeviceName string `json:"DeviceName"`
}
