package store

import "github.com/redis/go-redis/v9"

// Luaスクリプトの戻り値
const (
	scriptOK                = 0
	scriptNotFound          = -1
	scriptTMSIConflict      = -2
	scriptExtensionConflict = -3
)

// createOrTouchScript は加入者を作成するか、既存なら更新日時のみ更新する。
// KEYS[1]=sub:<imsi> KEYS[2]=seq:subscriber
// ARGV[1]=imsi ARGV[2]=now
// 戻り値: 作成時は採番したID、既存なら0
var createOrTouchScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  redis.call('HSET', KEYS[1], 'updated', ARGV[2])
  return 0
end
local id = redis.call('INCR', KEYS[2])
redis.call('HSET', KEYS[1],
  'id', id, 'imsi', ARGV[1], 'tmsi', '', 'extension', '', 'name', '',
  'authorized', '0', 'lac', '0', 'created', ARGV[2], 'updated', ARGV[2])
return id
`)

// syncScript は加入者の可変属性を書き戻す。
// TMSIと内線番号は idx:tmsi: / idx:ext: の所有者を確認してから付け替える。
// KEYS[1]=sub:<imsi>
// ARGV[1]=imsi ARGV[2]=tmsi ARGV[3]=extension ARGV[4]=name ARGV[5]=authorized
// ARGV[6]=lac ARGV[7]=now ARGV[8]=TMSIインデックスprefix ARGV[9]=内線インデックスprefix
var syncScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -1
end
local imsi = ARGV[1]
local tmsi = ARGV[2]
local ext = ARGV[3]
if tmsi ~= '' then
  local owner = redis.call('GET', ARGV[8] .. tmsi)
  if owner and owner ~= imsi then
    return -2
  end
end
if ext ~= '' then
  local owner = redis.call('GET', ARGV[9] .. ext)
  if owner and owner ~= imsi then
    return -3
  end
end
local cur = redis.call('HMGET', KEYS[1], 'tmsi', 'extension')
if cur[1] and cur[1] ~= '' and cur[1] ~= tmsi then
  if redis.call('GET', ARGV[8] .. cur[1]) == imsi then
    redis.call('DEL', ARGV[8] .. cur[1])
  end
end
if cur[2] and cur[2] ~= '' and cur[2] ~= ext then
  if redis.call('GET', ARGV[9] .. cur[2]) == imsi then
    redis.call('DEL', ARGV[9] .. cur[2])
  end
end
if tmsi ~= '' then
  redis.call('SET', ARGV[8] .. tmsi, imsi)
end
if ext ~= '' then
  redis.call('SET', ARGV[9] .. ext, imsi)
end
redis.call('HSET', KEYS[1],
  'tmsi', tmsi, 'extension', ext, 'name', ARGV[4],
  'authorized', ARGV[5], 'lac', ARGV[6], 'updated', ARGV[7])
return 0
`)

// claimTMSIScript はTMSIを加入者に割り当てる。
// 書き換えるのは tmsi / lac / updated のみで、内線番号や許可は触らない。
// KEYS[1]=sub:<imsi>
// ARGV[1]=imsi ARGV[2]=tmsi ARGV[3]=lac ARGV[4]=now ARGV[5]=TMSIインデックスprefix
var claimTMSIScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -1
end
local imsi = ARGV[1]
local tmsi = ARGV[2]
local owner = redis.call('GET', ARGV[5] .. tmsi)
if owner and owner ~= imsi then
  return -2
end
local cur = redis.call('HGET', KEYS[1], 'tmsi')
if cur and cur ~= '' and cur ~= tmsi then
  if redis.call('GET', ARGV[5] .. cur) == imsi then
    redis.call('DEL', ARGV[5] .. cur)
  end
end
redis.call('SET', ARGV[5] .. tmsi, imsi)
redis.call('HSET', KEYS[1], 'tmsi', tmsi, 'lac', ARGV[3], 'updated', ARGV[4])
return 0
`)

// associateEquipmentScript は端末を登録し、加入者×端末の観測記録を更新する。
// KEYS[1]=equip:<imei> KEYS[2]=seq:equipment
// ARGV[1]=imei ARGV[2]=now ARGV[3]=加入者ID ARGV[4]=観測記録prefix
// 戻り値: {端末ID, 端末新規(0/1), 観測新規(0/1)}
var associateEquipmentScript = redis.NewScript(`
local newEquip = 0
local id = redis.call('HGET', KEYS[1], 'id')
if not id then
  id = redis.call('INCR', KEYS[2])
  redis.call('HSET', KEYS[1], 'id', id, 'imei', ARGV[1], 'created', ARGV[2])
  newEquip = 1
end
id = tonumber(id)
local wkey = ARGV[4] .. ARGV[3] .. ':' .. id
local newWatch = redis.call('HSETNX', wkey, 'created', ARGV[2])
redis.call('HSET', wkey, 'subscriber_id', ARGV[3], 'equipment_id', id, 'updated', ARGV[2])
return {id, newEquip, newWatch}
`)

// storeSMSScript はSMSを採番して保存し、未送信インデックスに登録する。
// KEYS[1]=seq:sms KEYS[2]=idx:sms:unsent
// ARGV[1]=SMSキーprefix ARGV[2]=sender_id ARGV[3]=receiver_id ARGV[4]=header
// ARGV[5]=text ARGV[6]=now
var storeSMSScript = redis.NewScript(`
local id = redis.call('INCR', KEYS[1])
redis.call('HSET', ARGV[1] .. id,
  'id', id, 'sender_id', ARGV[2], 'receiver_id', ARGV[3], 'header', ARGV[4],
  'text', ARGV[5], 'created', ARGV[6], 'sent', '0')
redis.call('ZADD', KEYS[2], id, id)
return id
`)

// markSMSSentScript はSMSを送信済みにし、未送信インデックスから外す。
// 送信日時は初回のみ記録する。
// KEYS[1]=sms:<id> KEYS[2]=idx:sms:unsent
// ARGV[1]=id ARGV[2]=now
// 戻り値: 1=今回記録, 0=送信済み, -1=未登録
var markSMSSentScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -1
end
redis.call('ZREM', KEYS[2], ARGV[1])
local sent = redis.call('HGET', KEYS[1], 'sent')
if sent and sent ~= '' and sent ~= '0' then
  return 0
end
redis.call('HSET', KEYS[1], 'sent', ARGV[2])
return 1
`)
